package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"catalog-admin/core/config"
	"catalog-admin/core/database"
	"catalog-admin/core/logger"
	"catalog-admin/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tableReport describes one catalog table after migration.
type tableReport struct {
	Table   string                `json:"table"`
	Columns []database.ColumnInfo `json:"columns"`
	Missing []string              `json:"missing"`
}

// migrateCmd creates or updates the catalog schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog schema and report its columns",
	Long:  `Runs the ORM auto-migration for items, variants and options, then verifies every expected column exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		logg.Info("Migrating catalog schema", zap.String("driver", cfg.Database.Driver))
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}

		reports, err := inspectSchema(db)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}

		broken := 0
		for _, r := range reports {
			if len(r.Missing) > 0 {
				broken++
				logg.Error("Table is missing columns", zap.String("table", r.Table), zap.Strings("missing", r.Missing))
				continue
			}
			logg.Info("Table ok", zap.String("table", r.Table), zap.Int("columns", len(r.Columns)))
		}
		if broken > 0 {
			return fmt.Errorf("%d table(s) incomplete after migration", broken)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("json", false, "Output the column report as JSON")
	RootCmd.AddCommand(migrateCmd)
}

// inspectSchema lists the columns of each catalog table and the expected ones that are absent.
func inspectSchema(db *gorm.DB) ([]tableReport, error) {
	var reports []tableReport
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model: %w", err)
		}

		table := stmt.Schema.Table
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		missing, err := database.MissingColumns(db, table, stmt.Schema.DBNames)
		if err != nil {
			return nil, err
		}

		reports = append(reports, tableReport{Table: table, Columns: columns, Missing: missing})
	}
	return reports, nil
}
