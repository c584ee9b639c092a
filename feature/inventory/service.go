package inventory

import (
	"bytes"
	"io"
	"time"

	"inventory-checker/core/intake"
	"inventory-checker/core/ledger"
	"inventory-checker/core/reconcile"
	"inventory-checker/core/sheet"

	"go.uber.org/zap"
)

// Service orchestrates ledger mutations, intake buffering and reconciliation.
type Service struct {
	ledger      *ledger.Ledger
	coordinator *intake.Coordinator
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new inventory service.
func NewService(l *ledger.Ledger, coordinator *intake.Coordinator, logger *zap.Logger) *Service {
	return &Service{
		ledger:      l,
		coordinator: coordinator,
		logger:      logger,
		now:         time.Now,
	}
}

// Commit records a counted quantity for a barcode directly, bypassing the
// entry buffers.
func (s *Service) Commit(barcode string, quantity int) (ledger.Entry, error) {
	return s.ledger.Commit(barcode, quantity)
}

// Entries returns the current ledger snapshot.
func (s *Service) Entries() []ledger.Entry {
	return s.ledger.Snapshot()
}

// Remove deletes a single entry by id. Unknown ids are a no-op.
func (s *Service) Remove(id string) {
	s.ledger.Remove(id)
}

// Clear empties the ledger and its persisted record.
func (s *Service) Clear() {
	s.ledger.Clear()
}

// SetMode switches the entry coordinator between manual and auto.
func (s *Service) SetMode(mode string) error {
	m, err := intake.ParseMode(mode)
	if err != nil {
		return err
	}
	return s.coordinator.SetMode(m)
}

// Mode returns the coordinator's current entry mode.
func (s *Service) Mode() intake.Mode {
	return s.coordinator.Mode()
}

// UpdateBuffers applies partial buffer edits. A nil field leaves that buffer
// untouched, so a scanner can stream barcode keystrokes without clobbering
// the quantity field.
func (s *Service) UpdateBuffers(barcode, quantity *string) {
	if barcode != nil {
		s.coordinator.SetBarcode(*barcode)
	}
	if quantity != nil {
		s.coordinator.SetQuantity(*quantity)
	}
}

// Submit commits the current buffers through the manual path.
func (s *Service) Submit() (ledger.Entry, error) {
	return s.coordinator.Submit()
}

// Reconcile parses an expected-quantity workbook and compares it against the
// counted ledger.
func (s *Service) Reconcile(r io.Reader) ([]reconcile.Row, reconcile.Summary, error) {
	imported, err := sheet.ParseExpected(r)
	if err != nil {
		return nil, reconcile.Summary{}, err
	}
	rows := reconcile.Compare(imported, s.ledger.Snapshot())
	summary := reconcile.Summarize(rows)
	s.logger.Info("Reconciliation completed",
		zap.Int("total", summary.Total),
		zap.Int("mismatches", summary.Mismatches),
		zap.Int("missing", summary.Missing),
		zap.Int("extra", summary.Extra))
	return rows, summary, nil
}

// ExportLedger builds the counted-inventory workbook. It returns the workbook
// bytes and the date-stamped download filename.
func (s *Service) ExportLedger() (*bytes.Buffer, string, error) {
	f, err := sheet.BuildLedger(s.ledger.Snapshot())
	if err != nil {
		return nil, "", err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf, sheet.LedgerFilename(s.now()), nil
}

// ExportDeficits parses an expected-quantity workbook, compares it against the
// ledger and builds the deficit workbook for rows that are short or not scanned.
func (s *Service) ExportDeficits(r io.Reader) (*bytes.Buffer, string, error) {
	imported, err := sheet.ParseExpected(r)
	if err != nil {
		return nil, "", err
	}
	rows := reconcile.Compare(imported, s.ledger.Snapshot())
	f, err := sheet.BuildDeficits(rows)
	if err != nil {
		return nil, "", err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf, sheet.DeficitFilename(s.now()), nil
}
