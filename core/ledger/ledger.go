package ledger

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordKey is the namespaced identifier under which the ledger is persisted.
const RecordKey = "inventory-products"

// Entry is a single aggregated count line.
type Entry struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Barcode is the aggregation key, stored trimmed.
	Barcode string `json:"barcode"`

	// Quantity is the accumulated counted quantity.
	Quantity int `json:"quantity"`
}

// Store persists the full ledger state as one logical record.
// Implementations live in core/persist.
type Store interface {
	// Load reads the persisted entries. A missing record returns (nil, nil).
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the persisted record with the given entries.
	Save(ctx context.Context, entries []Entry) error
	// Erase removes the persisted record entirely.
	Erase(ctx context.Context) error
}

// Ledger is the mutable in-session count table. All mutations go through
// Commit, Remove and Clear; reads go through Snapshot.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
	store   Store
	logger  *zap.Logger
}

// New creates a Ledger rehydrated from store. A load failure is logged and
// treated as an empty ledger; it never blocks startup.
func New(store Store, logger *zap.Logger) *Ledger {
	l := &Ledger{store: store, logger: logger}

	entries, err := store.Load(context.Background())
	if err != nil {
		logger.Warn("Failed to load persisted ledger, starting empty", zap.Error(err))
		return l
	}
	l.entries = entries
	if len(entries) > 0 {
		logger.Info("Ledger restored", zap.Int("entries", len(entries)))
	}
	return l
}

// Commit adds delta to the entry for barcode, creating the entry if needed.
// The barcode is trimmed of surrounding whitespace first. It returns the
// resulting entry, or an *InvalidInputError when the trimmed barcode is empty
// or delta is not positive. On success the full state is persisted.
func (l *Ledger) Commit(barcode string, delta int) (Entry, error) {
	code := strings.TrimSpace(barcode)
	if code == "" {
		return Entry{}, &InvalidInputError{Field: "barcode", Reason: "must not be empty"}
	}
	if delta <= 0 {
		return Entry{}, &InvalidInputError{Field: "quantity", Reason: "must be a positive integer"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].Barcode == code {
			l.entries[i].Quantity += delta
			entry := l.entries[i]
			l.persist()
			l.logger.Info("Quantity updated",
				zap.String("barcode", entry.Barcode),
				zap.Int("quantity", entry.Quantity))
			return entry, nil
		}
	}

	entry := Entry{ID: uuid.NewString(), Barcode: code, Quantity: delta}
	l.entries = append(l.entries, entry)
	l.persist()
	l.logger.Info("Entry added",
		zap.String("barcode", entry.Barcode),
		zap.Int("quantity", entry.Quantity))
	return entry, nil
}

// Remove deletes the entry with the given id. Removing an unknown id is a no-op.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.persist()
			return
		}
	}
}

// Clear empties the ledger and erases the persisted record.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	if err := l.store.Erase(context.Background()); err != nil {
		l.logger.Error("Failed to erase persisted ledger", zap.Error(err))
	}
}

// Snapshot returns a copy of the entries in insertion order.
func (l *Ledger) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of distinct barcodes currently counted.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// persist writes the current state to the store. Errors are logged, not
// returned; the caller's mutation has already succeeded. Callers must hold mu.
func (l *Ledger) persist() {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	if err := l.store.Save(context.Background(), entries); err != nil {
		l.logger.Error("Failed to persist ledger", zap.Error(err))
		return
	}
	l.logger.Debug("Data saved automatically", zap.Int("entries", len(entries)))
}
