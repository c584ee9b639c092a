package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inventory-checker/core/ledger"
)

// FileStore persists the ledger as a JSON file on local disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on
// the first save, not here, so a read-only startup never fails.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, ledger.RecordKey+".json")}
}

// Load reads the persisted entries. A missing file yields an empty ledger.
func (s *FileStore) Load(ctx context.Context) ([]ledger.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var entries []ledger.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ledger file: %w", err)
	}
	return entries, nil
}

// Save replaces the record. The write goes to a temp file first and is then
// renamed over the record, so a crash mid-write cannot corrupt it.
func (s *FileStore) Save(ctx context.Context, entries []ledger.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// Erase removes the record. Erasing an absent record is a no-op.
func (s *FileStore) Erase(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove ledger file: %w", err)
	}
	return nil
}
