// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL or SQLite connections from the
// application's configuration. SQLite connections always enable foreign keys so
// the catalog's cascading deletes behave the same as on the server databases.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the migrate command verify that the
// catalog tables carry every column the models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "options", []string{"price", "offer_price"})
package database
