package persist

import (
	"fmt"

	"inventory-checker/core/ledger"
	"inventory-checker/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries the backends a driver may need. Only the fields the selected
// driver uses have to be populated.
type Deps struct {
	// DB is the GORM connection for the db driver.
	DB *gorm.DB
	// Storage is the object storage client for the object driver.
	Storage storage.Client
	// Bucket is the bucket holding the ledger record for the object driver.
	Bucket string
}

// Open selects and initializes the ledger store for the configured driver.
func Open(cfg Config, deps Deps, logger *zap.Logger) (ledger.Store, error) {
	switch cfg.Driver {
	case DriverFile, "":
		logger.Debug("Using file ledger store", zap.String("dir", cfg.Dir))
		return NewFileStore(cfg.Dir), nil

	case DriverObject:
		if deps.Storage == nil {
			return nil, fmt.Errorf("object persistence requires a storage client")
		}
		logger.Debug("Using object ledger store", zap.String("bucket", deps.Bucket))
		return NewObjectStore(deps.Storage, deps.Bucket), nil

	case DriverDB:
		if deps.DB == nil {
			return nil, fmt.Errorf("db persistence requires a database connection")
		}
		store := NewDBStore(deps.DB)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		logger.Debug("Using database ledger store")
		return store, nil

	default:
		return nil, fmt.Errorf("unknown persistence driver %q", cfg.Driver)
	}
}
