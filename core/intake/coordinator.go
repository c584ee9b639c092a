package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"inventory-checker/core/ledger"

	"go.uber.org/zap"
)

// Mode selects how buffer contents reach the ledger.
type Mode string

const (
	// ModeManual commits only on an explicit Submit.
	ModeManual Mode = "manual"
	// ModeAuto commits automatically once both buffers are valid and stable
	// for the debounce window.
	ModeAuto Mode = "auto"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeManual, ModeAuto:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown entry mode %q", s)
	}
}

// Committer is the ledger operation the coordinator needs. *ledger.Ledger
// satisfies it.
type Committer interface {
	Commit(barcode string, delta int) (ledger.Entry, error)
}

var allDigits = regexp.MustCompile(`^\d+$`)

// signature identifies a committed (barcode, quantity) pair for duplicate
// suppression.
type signature struct {
	barcode  string
	quantity int
}

// Coordinator owns the entry buffers and the debounce timer.
type Coordinator struct {
	mu sync.Mutex

	ledger   Committer
	logger   *zap.Logger
	debounce time.Duration

	mode         Mode
	barcodeText  string
	quantityText string

	lastCommitted *signature
	timer         *time.Timer

	onCommit func(ledger.Entry)
}

// New creates a Coordinator in auto mode with the given debounce window.
func New(l Committer, cfg Config, logger *zap.Logger) *Coordinator {
	mode := ModeAuto
	if m, err := ParseMode(cfg.Mode); err == nil {
		mode = m
	}
	return &Coordinator{
		ledger:   l,
		logger:   logger,
		debounce: cfg.Debounce(),
		mode:     mode,
	}
}

// SetOnCommit registers a callback invoked after every successful commit, with
// the resulting entry. The presentation layer uses it to return focus to the
// barcode field. The callback runs outside the coordinator lock.
func (c *Coordinator) SetOnCommit(fn func(ledger.Entry)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCommit = fn
}

// Mode returns the current entry mode.
func (c *Coordinator) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode switches between manual and auto. Switching cancels any pending
// debounce timer without committing.
func (c *Coordinator) SetMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimerLocked()
	c.mode = mode
	c.logger.Debug("Entry mode switched", zap.String("mode", string(mode)))
	return nil
}

// SetBarcode updates the barcode buffer.
func (c *Coordinator) SetBarcode(text string) {
	c.setBuffer(&c.barcodeText, text)
}

// SetQuantity updates the quantity buffer.
func (c *Coordinator) SetQuantity(text string) {
	c.setBuffer(&c.quantityText, text)
}

// Buffers returns the current barcode and quantity buffer contents.
func (c *Coordinator) Buffers() (barcode, quantity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.barcodeText, c.quantityText
}

// Submit is the manual path: it commits the current buffers immediately,
// regardless of mode. On success the buffers and the duplicate-suppression
// signature are cleared.
func (c *Coordinator) Submit() (ledger.Entry, error) {
	c.mu.Lock()
	c.cancelTimerLocked()

	qty, ok := parseQuantity(c.quantityText)
	if !ok {
		c.mu.Unlock()
		return ledger.Entry{}, &ledger.InvalidInputError{Field: "quantity", Reason: "must be a positive integer"}
	}
	barcode := c.barcodeText
	c.mu.Unlock()

	entry, err := c.ledger.Commit(barcode, qty)
	if err != nil {
		return ledger.Entry{}, err
	}

	c.mu.Lock()
	c.barcodeText = ""
	c.quantityText = ""
	c.lastCommitted = nil
	fn := c.onCommit
	c.mu.Unlock()

	if fn != nil {
		fn(entry)
	}
	return entry, nil
}

// setBuffer applies a buffer edit: it cancels any pending timer, drops the
// suppression signature once the buffers form a valid pair with different
// values, and in auto mode re-arms the timer if both buffers are valid.
func (c *Coordinator) setBuffer(buf *string, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimerLocked()

	if *buf != text {
		*buf = text
		// A replay of the committed pair keeps the signature, so re-entering
		// the same values (a scanner re-read, a UI refresh) stays suppressed.
		if c.lastCommitted != nil {
			if sig, ok := c.validLocked(); ok && sig != *c.lastCommitted {
				c.lastCommitted = nil
			}
		}
	}

	if c.mode != ModeAuto {
		return
	}
	if _, ok := c.validLocked(); !ok {
		return
	}
	c.timer = time.AfterFunc(c.debounce, c.fire)
}

// fire is the debounce timer callback. It re-validates against the buffers as
// they are now, suppresses an exact repeat of the last committed pair, and
// otherwise commits.
func (c *Coordinator) fire() {
	c.mu.Lock()
	c.timer = nil

	if c.mode != ModeAuto {
		c.mu.Unlock()
		return
	}
	sig, ok := c.validLocked()
	if !ok {
		c.mu.Unlock()
		return
	}
	if c.lastCommitted != nil && *c.lastCommitted == sig {
		c.logger.Debug("Duplicate auto-commit suppressed", zap.String("barcode", sig.barcode))
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	entry, err := c.ledger.Commit(sig.barcode, sig.quantity)
	if err != nil {
		c.logger.Warn("Auto-commit rejected", zap.Error(err))
		return
	}

	c.mu.Lock()
	c.lastCommitted = &sig
	// Clear the buffers only when they still hold the committed pair; an
	// edit that landed while the commit was in flight stays.
	if cur, ok := c.validLocked(); ok && cur == sig {
		c.barcodeText = ""
		c.quantityText = ""
	}
	fn := c.onCommit
	c.mu.Unlock()

	if fn != nil {
		fn(entry)
	}
}

// validLocked applies the auto-mode validity predicate to the current buffers.
// Callers must hold mu.
func (c *Coordinator) validLocked() (signature, bool) {
	barcode := strings.TrimSpace(c.barcodeText)
	if barcode == "" {
		return signature{}, false
	}
	qty, ok := parseQuantity(c.quantityText)
	if !ok {
		return signature{}, false
	}
	return signature{barcode: barcode, quantity: qty}, true
}

// cancelTimerLocked stops a pending debounce timer. Callers must hold mu.
func (c *Coordinator) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// parseQuantity accepts only all-digit strings with a positive value.
func parseQuantity(text string) (int, bool) {
	trimmed := strings.TrimSpace(text)
	if !allDigits.MatchString(trimmed) {
		return 0, false
	}
	qty, err := strconv.Atoi(trimmed)
	if err != nil || qty <= 0 {
		return 0, false
	}
	return qty, true
}
