package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spherical/saleseer/cmd/saleseer/ui"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/search"
)

const historySize = 5

var (
	searchTable bool
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog with a natural-language query",
	Long: `Search the catalog with a natural-language query, for example:

  saleseer search "Show me red dresses under $200"

Without a query, an interactive prompt is started. Type "history" to list
recent searches, "stats" for the catalog overview and "quit" to leave.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchTable, "table", false, "also print results as a table")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) > 0 {
		return runSingleSearch(ctx, a, strings.Join(args, " "))
	}
	return runSearchMode(ctx, a, os.Stdin)
}

func runSingleSearch(ctx context.Context, a *app, query string) error {
	res := searchWithSpinner(ctx, a.search, query)

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(res, searchTable)
	return nil
}

// runSearchMode reads queries until EOF or "quit".
func runSearchMode(ctx context.Context, a *app, in io.Reader) error {
	ui.Section("Saleseer Product Search")
	ui.Info("Try queries like: 'Show me red dresses under $200' or 'I want blue jeans'")
	ui.Info("Commands: history, stats, quit")

	prompter := ui.NewPrompter(in)
	var history []string

	for {
		if ctx.Err() != nil {
			return nil
		}

		ui.Newline()
		input, err := prompter.Prompt("What are you looking for?")
		if errors.Is(err, io.EOF) {
			ui.Newline()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "history":
			printHistory(history)
			continue
		case "stats":
			ui.CatalogStats(a.search.Stats())
			continue
		}

		res := searchWithSpinner(ctx, a.search, input)
		printResult(res, searchTable)
		history = rememberQuery(history, input)
	}
}

func searchWithSpinner(ctx context.Context, svc *search.Service, query string) *search.Result {
	spinner := ui.NewSpinner("Understanding your request and finding products...")
	spinner.Start()
	defer spinner.Stop()
	return svc.Search(ctx, query)
}

// rememberQuery puts query first, skipping repeats and keeping the list short.
func rememberQuery(history []string, query string) []string {
	for _, q := range history {
		if q == query {
			return history
		}
	}
	history = append([]string{query}, history...)
	if len(history) > historySize {
		history = history[:historySize]
	}
	return history
}

func printHistory(history []string) {
	if len(history) == 0 {
		ui.Info("No searches yet.")
		return
	}
	ui.Section("Recent Searches")
	for i, q := range history {
		ui.Message("  %d. %s", i+1, q)
	}
}

func printResult(res *search.Result, table bool) {
	ui.Newline()
	ui.Step("%s", res.Summary)
	if res.Source == domain.SourceFallback {
		ui.Debug("keyword fallback used (%s)", res.FallbackReason)
	} else {
		ui.Debug("criteria source: %s", res.Source)
	}

	ui.Newline()
	ui.Box("Recommendation Insight", res.Explanation)

	if res.Count() == 0 {
		ui.Warning("No products found matching your criteria.")
		ui.Message("Suggestions:")
		ui.Message("%s", strings.TrimRight(ui.FormatList(ui.BroadenSuggestions), "\n"))
		return
	}

	noun := "Products"
	if res.Count() == 1 {
		noun = "Product"
	}
	ui.Section(fmt.Sprintf("Found %d %s", res.Count(), noun))
	ui.ProductCards(res.Products)

	if table {
		ui.Newline()
		ui.ProductTable(res.Products)
	}
}
