// Package database opens the SQL database that persists view layer state.
//
// It wraps GORM and supports MySQL for shared deployments and SQLite for single
// node setups and tests.
//
// # Connect
//
// Connect picks the dialect from Config.Driver, applies pool settings and pings
// the server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition, which lets
// the state store verify its tables when automatic migration is disabled.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("State persistence disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "node_states", []string{"path", "flag"})
package database
