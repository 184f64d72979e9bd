// Package config provides configuration management for the catalog admin service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, JWT secret)
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: S3/MinIO credentials, bucket and public URL
//   - Log: Logging level and format
//   - Catalog: page sizes, reconciliation workers, image limits
//
// Environment keys are SECTION_KEY, e.g. DATABASE_DRIVER or CATALOG_PAGE_SIZE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
