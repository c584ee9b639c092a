// Package database handles the MySQL connection for the db persistence driver.
//
// It wraps GORM connection setup: DSN construction with encoded credentials
// and timeouts, pool sizing, and an initial ping so a misconfigured backend
// fails fast instead of at the first ledger save.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
