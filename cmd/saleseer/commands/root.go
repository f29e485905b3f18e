// Package commands implements the saleseer CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/spherical/saleseer/cmd/saleseer/ui"
	"github.com/spherical/saleseer/internal/config"
	"github.com/spherical/saleseer/internal/domain"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "saleseer",
	Short: "Saleseer - natural-language product search",
	Long: `Saleseer finds products in a catalog from plain-English requests such as
"Show me red dresses under $200". A language model turns the request into
search criteria; when it is unavailable a keyword extractor takes over.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.InitUI(noColor, verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (env CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ReportError prints a command failure. Configuration and catalog problems get
// a boxed message with a hint, everything else a single line.
func ReportError(err error) {
	switch {
	case domain.IsType(err, domain.ErrorTypeConfig):
		ui.ErrorBox("Configuration error", err.Error()+"\n\nCopy .env.example to .env and set "+config.APIKeyEnv+",\nor check the file passed with --config.")
	case domain.IsType(err, domain.ErrorTypeCatalog), domain.IsType(err, domain.ErrorTypeIO):
		ui.ErrorBox("Catalog unavailable", err.Error())
	default:
		ui.Error("%v", err)
	}
}
