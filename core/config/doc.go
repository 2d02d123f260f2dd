// Package config provides configuration management for the catalog sync
// service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: external catalog API settings (base URL, page size, retries)
//   - Database: MySQL connection details
//   - Log: Logging level and format
//   - Sync: reconciliation write mode and progress reporting
//   - Updater: bulk update concurrency and rate limiting
//   - Storage: S3/MinIO credentials for run-report archival
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.BaseURL)
package config
