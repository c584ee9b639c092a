package cmd

import (
	"fmt"

	"inventory-checker/core/config"
	"inventory-checker/core/database"
	"inventory-checker/core/ledger"
	"inventory-checker/core/persist"
	"inventory-checker/core/storage"

	"go.uber.org/zap"
)

// openStore wires the persistence backend the configuration selects. Only the
// backends the chosen driver needs are connected, so the default file driver
// works without a database or object store running.
func openStore(cfg *config.Config, logg *zap.Logger) (ledger.Store, error) {
	deps := persist.Deps{Bucket: cfg.Storage.Bucket}

	switch cfg.Persist.Driver {
	case persist.DriverDB:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.DB = db

	case persist.DriverObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.Storage = client
	}

	return persist.Open(cfg.Persist, deps, logg)
}
