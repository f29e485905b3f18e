package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/spherical/saleseer/cmd/saleseer/ui"
	"github.com/spherical/saleseer/internal/catalog"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long:  "Show the total product count, price range, average rating, categories and colors of the catalog.",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, true)

	cat, err := catalog.Load(ctx, cfg.Catalog.Source, cfg.Catalog.Table, logger)
	if err != nil {
		return err
	}

	stats := cat.Stats()
	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	ui.Info("Catalog: %s", cat.Source())
	ui.CatalogStats(stats)
	return nil
}
