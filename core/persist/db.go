package persist

import (
	"context"
	"fmt"

	"inventory-checker/core/ledger"

	"gorm.io/gorm"
)

// entryRecord is the GORM model for one persisted ledger entry. The position
// column preserves insertion order across a round-trip.
type entryRecord struct {
	ID       string `gorm:"column:id;primaryKey;size:36"`
	Barcode  string `gorm:"column:barcode;size:128"`
	Quantity int    `gorm:"column:quantity"`
	Position int    `gorm:"column:position"`
}

// TableName implements the GORM naming convention.
func (entryRecord) TableName() string {
	return "ledger_entries"
}

// DBStore persists the ledger in a relational table, replaced wholesale on
// every save.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a DBStore on an existing GORM connection.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates the ledger_entries table if needed.
func (s *DBStore) Migrate() error {
	if err := s.db.AutoMigrate(&entryRecord{}); err != nil {
		return fmt.Errorf("failed to migrate ledger table: %w", err)
	}
	return nil
}

// Load reads the persisted entries in insertion order.
func (s *DBStore) Load(ctx context.Context) ([]ledger.Entry, error) {
	var records []entryRecord
	if err := s.db.WithContext(ctx).Order("position").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	entries := make([]ledger.Entry, len(records))
	for i, rec := range records {
		entries[i] = ledger.Entry{ID: rec.ID, Barcode: rec.Barcode, Quantity: rec.Quantity}
	}
	return entries, nil
}

// Save replaces the table contents atomically.
func (s *DBStore) Save(ctx context.Context, entries []ledger.Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM ledger_entries").Error; err != nil {
			return fmt.Errorf("failed to clear ledger rows: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		records := make([]entryRecord, len(entries))
		for i, entry := range entries {
			records[i] = entryRecord{
				ID:       entry.ID,
				Barcode:  entry.Barcode,
				Quantity: entry.Quantity,
				Position: i,
			}
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert ledger rows: %w", err)
		}
		return nil
	})
}

// Erase removes all persisted rows.
func (s *DBStore) Erase(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("DELETE FROM ledger_entries").Error; err != nil {
		return fmt.Errorf("failed to erase ledger rows: %w", err)
	}
	return nil
}
