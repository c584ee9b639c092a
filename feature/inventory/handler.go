package inventory

import (
	"errors"
	"fmt"
	"io"

	"inventory-checker/core/ledger"
	"inventory-checker/core/logger"
	"inventory-checker/core/reconcile"
	"inventory-checker/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/ledger", h.HandleCommit)
	app.Get("/ledger", h.HandleList)
	app.Get("/ledger/export", h.HandleExportLedger)
	app.Delete("/ledger/:id", h.HandleRemove)
	app.Delete("/ledger", h.HandleClear)

	group := app.Group("/intake")
	group.Put("/mode", h.HandleSetMode)
	group.Post("/buffer", h.HandleBuffer)
	group.Post("/submit", h.HandleSubmit)

	app.Post("/reconcile", h.HandleReconcile)
	app.Post("/reconcile/export", h.HandleExportDeficits)
}

type commitRequest struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type bufferRequest struct {
	Barcode  *string `json:"barcode"`
	Quantity *string `json:"quantity"`
}

type listResponse struct {
	Items []ledger.Entry `json:"items"`
	Count int            `json:"count"`
}

type reconcileResponse struct {
	Rows    []reconcile.Row   `json:"rows"`
	Summary reconcile.Summary `json:"summary"`
}

// HandleCommit records a counted quantity for a barcode.
// @Summary Commit a count
// @Description Add a counted quantity to the ledger entry for a barcode, creating the entry if needed.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body commitRequest true "Barcode and quantity"
// @Success 200 {object} ledger.Entry "Resulting entry"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /ledger [post]
func (h *Handler) HandleCommit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req commitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	entry, err := h.service.Commit(req.Barcode, req.Quantity)
	if err != nil {
		if ledger.IsInvalidInput(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Commit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entry)
}

// HandleList returns the current ledger snapshot.
// @Summary List ledger entries
// @Description Get all counted entries in insertion order, with the distinct-barcode count.
// @Tags ledger
// @Produce json
// @Success 200 {object} listResponse "Ledger snapshot"
// @Router /ledger [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items := h.service.Entries()
	return c.JSON(listResponse{Items: items, Count: len(items)})
}

// HandleRemove deletes a single ledger entry.
// @Summary Remove an entry
// @Description Delete the entry with the given id. Removing an unknown id succeeds silently.
// @Tags ledger
// @Param id path string true "Entry ID"
// @Success 204 "Removed"
// @Router /ledger/{id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	h.service.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClear empties the whole ledger.
// @Summary Clear the ledger
// @Description Remove every entry and erase the persisted record. Requires confirm=true.
// @Tags ledger
// @Produce json
// @Param confirm query bool true "Must be true to confirm"
// @Success 204 "Cleared"
// @Failure 400 {object} map[string]string "Missing confirmation"
// @Router /ledger [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "clearing the ledger requires confirm=true",
		})
	}
	h.service.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetMode switches the entry mode.
// @Summary Set entry mode
// @Description Switch the entry coordinator between manual and auto (debounced) commit.
// @Tags intake
// @Accept json
// @Produce json
// @Param request body modeRequest true "Entry mode"
// @Success 200 {object} map[string]string "Active mode"
// @Failure 400 {object} map[string]string "Unknown mode"
// @Router /intake/mode [put]
func (h *Handler) HandleSetMode(c *fiber.Ctx) error {
	var req modeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.service.SetMode(req.Mode); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"mode": req.Mode})
}

// HandleBuffer applies partial edits to the entry buffers.
// @Summary Update entry buffers
// @Description Update the barcode and/or quantity buffer. In auto mode a valid pair commits after the debounce window.
// @Tags intake
// @Accept json
// @Produce json
// @Param request body bufferRequest true "Buffer edits; omitted fields are left untouched"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /intake/buffer [post]
func (h *Handler) HandleBuffer(c *fiber.Ctx) error {
	var req bufferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	h.service.UpdateBuffers(req.Barcode, req.Quantity)
	return c.SendStatus(fiber.StatusAccepted)
}

// HandleSubmit commits the current buffers immediately.
// @Summary Submit the current buffers
// @Description Commit whatever is in the barcode and quantity buffers, regardless of mode.
// @Tags intake
// @Produce json
// @Success 200 {object} ledger.Entry "Resulting entry"
// @Failure 400 {object} map[string]string "Invalid buffer contents"
// @Router /intake/submit [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	entry, err := h.service.Submit()
	if err != nil {
		if ledger.IsInvalidInput(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entry)
}

// HandleReconcile compares an uploaded expected-quantity workbook against the ledger.
// @Summary Reconcile against an expected sheet
// @Description Upload an xlsx with Barcode and Quantity columns and get per-barcode comparison rows plus a summary.
// @Tags reconcile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Expected-quantity xlsx"
// @Success 200 {object} reconcileResponse "Comparison result"
// @Failure 400 {object} map[string]string "Unreadable upload"
// @Failure 422 {object} map[string]string "Required column not found"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	src, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer src.Close()

	rows, summary, err := h.service.Reconcile(src)
	if err != nil {
		return h.sheetError(c, l, err)
	}
	return c.JSON(reconcileResponse{Rows: rows, Summary: summary})
}

// HandleExportDeficits builds the deficit workbook for an uploaded expected sheet.
// @Summary Download the deficit workbook
// @Description Upload an expected-quantity xlsx and download the rows that are short or not scanned.
// @Tags reconcile
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "Expected-quantity xlsx"
// @Success 200 {file} binary "Deficit workbook"
// @Failure 400 {object} map[string]string "Unreadable upload"
// @Failure 422 {object} map[string]string "Required column not found"
// @Router /reconcile/export [post]
func (h *Handler) HandleExportDeficits(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	src, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer src.Close()

	buf, filename, err := h.service.ExportDeficits(src)
	if err != nil {
		return h.sheetError(c, l, err)
	}
	return sendWorkbook(c, buf.Bytes(), filename)
}

// HandleExportLedger downloads the counted inventory as a workbook.
// @Summary Download the ledger workbook
// @Description Download all counted entries as an xlsx with Barcode and Quantity columns.
// @Tags ledger
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Ledger workbook"
// @Router /ledger/export [get]
func (h *Handler) HandleExportLedger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	buf, filename, err := h.service.ExportLedger()
	if err != nil {
		return h.sheetError(c, l, err)
	}
	return sendWorkbook(c, buf.Bytes(), filename)
}

// sheetError translates codec errors into statuses: a missing column is the
// caller's file (422), an empty export is a notice rather than a failure.
func (h *Handler) sheetError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if sheet.IsMissingColumn(err) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if errors.Is(err, sheet.ErrEmptyExport) {
		return c.JSON(fiber.Map{"notice": "no data to export"})
	}
	l.Error("Spreadsheet operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// openUpload pulls the "file" part out of a multipart upload.
func openUpload(c *fiber.Ctx) (io.ReadCloser, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file upload: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return src, nil
}

func sendWorkbook(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
