package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"catalog-admin/core/config"
	"catalog-admin/core/database"
	"catalog-admin/core/logger"
	"catalog-admin/core/storage"
	"catalog-admin/feature/catalog"
	"catalog-admin/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemCmd prints one item tree
var itemCmd = &cobra.Command{
	Use:   "item [id]",
	Short: "View an item with its variants and options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		svc, logg, err := newCatalogService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		item, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(item)
		}
		printItem(item)
		return nil
	},
}

func init() {
	itemCmd.Flags().Bool("json", false, "Output the item tree as JSON")
	RootCmd.AddCommand(itemCmd)
}

// newCatalogService wires the catalog service for commands that run without the HTTP server.
func newCatalogService() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	feature := catalog.NewFeature(db, storage.NewPublisher(client, cfg.Storage), logg, cfg.Catalog)
	return feature.Service(), logg, nil
}

func printItem(item *models.Item) {
	fmt.Println("\n--- Item ---")
	fmt.Printf("ID:          %s\n", item.ID)
	fmt.Printf("Title (ar):  %s\n", item.TitleAr)
	fmt.Printf("Title (en):  %s\n", item.TitleEn)
	fmt.Printf("Category:    %s\n", item.CategoryID)
	fmt.Printf("Owner:       %s\n", item.UserID)
	fmt.Printf("Rank:        %d\n", item.SortOrder)
	if item.ImageURL != nil {
		fmt.Printf("Image:       %s\n", *item.ImageURL)
	}
	fmt.Printf("Created:     %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println("------------")

	for _, v := range item.Variants {
		fmt.Printf("%s  %s / %s\n", v.ID, v.NameEn, v.NameAr)
		for _, o := range v.Options {
			offer := "-"
			if o.OfferPrice.Valid {
				offer = o.OfferPrice.Decimal.StringFixed(2)
			}
			fmt.Printf("    %s  %-12s price=%s offer=%s\n", o.ID, o.LabelEn, o.Price.StringFixed(2), offer)
		}
	}
	fmt.Println("------------")
}
