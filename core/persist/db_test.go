package persist

import (
	"context"
	"testing"

	"inventory-checker/core/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDBStore_Load(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewDBStore(db)

	rows := sqlmock.NewRows([]string{"id", "barcode", "quantity", "position"}).
		AddRow("id-1", "A1", 5, 0).
		AddRow("id-2", "B2", 1, 1)
	mock.ExpectQuery("SELECT (.+) FROM `ledger_entries` ORDER BY position").WillReturnRows(rows)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ledger.Entry{
		{ID: "id-1", Barcode: "A1", Quantity: 5},
		{ID: "id-2", Barcode: "B2", Quantity: 1},
	}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_LoadEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewDBStore(db)

	mock.ExpectQuery("SELECT (.+) FROM `ledger_entries` ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"id", "barcode", "quantity", "position"}))

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestDBStore_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewDBStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ledger_entries").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO `ledger_entries`").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.Save(context.Background(), []ledger.Entry{
		{ID: "id-1", Barcode: "A1", Quantity: 5},
		{ID: "id-2", Barcode: "B2", Quantity: 1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_SaveEmptySkipsInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewDBStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ledger_entries").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, store.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_Erase(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewDBStore(db)

	mock.ExpectExec("DELETE FROM ledger_entries").WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, store.Erase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
