package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/scanline/internal/presentation"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the active language's symbol table",
	Long: `List the active language's symbol table as JSON, in try order.

The order matters: literals are matched first-to-last, so a literal must
appear before any of its own prefixes.

Examples:
  # Built-in sample language
  scanline symbols

  # Custom language definition
  scanline symbols --lang verilog.yaml

  # Parse specific fields with jq
  scanline symbols | jq '.[].kind'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := loadLanguage()
		if err != nil {
			return err
		}

		symbols, err := lang.SymbolTable()
		if err != nil {
			return err
		}

		return presentation.NewFormatter(os.Stdout).FormatSymbols(symbols)
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
