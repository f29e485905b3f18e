// Command saleseer searches a product catalog with natural-language queries.
package main

import (
	"os"

	"github.com/spherical/saleseer/cmd/saleseer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.ReportError(err)
		os.Exit(1)
	}
}
