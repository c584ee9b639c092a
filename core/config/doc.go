// Package config provides configuration management for the Inventory Checker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, with defaults declared directly on the partial config
// structs via struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Log: Logging level and format
//   - Persist: Ledger persistence driver (file, object, db)
//   - Database: MySQL connection details for the db driver
//   - Storage: S3/MinIO credentials and bucket for the object driver
//   - Intake: Entry mode and auto-commit debounce window
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
