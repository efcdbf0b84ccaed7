// Package config loads the application configuration.
//
// Values come from environment variables and an optional .env file, read with
// godotenv and resolved through Viper. Defaults live next to each field in the
// 'default' struct tag and nested keys map to upper-case variables joined with
// underscores (sync.strict is SYNC_STRICT).
//
// # Configuration Structure
//
//   - Server: listen address, API key, Swagger UI
//   - Storage: S3/MinIO credentials, bucket and document prefix
//   - Database: state database driver and connection details
//   - Log: level and format
//   - Sync: strict engine checking
//   - Layers: default document, state persistence and migrations
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := layer.NewEngineFromConfig(cfg.Sync, logger)
package config
