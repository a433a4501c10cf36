package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/scanline/internal/config"
)

var langInitCmd = &cobra.Command{
	Use:   "lang:init [path]",
	Short: "Write the sample language definition to a file",
	Long: `Write the built-in sample language definition to a yaml file as a
starting point for a custom language. Defaults to scanline.yaml in the
current directory. Refuses to overwrite an existing file.

Examples:
  scanline lang:init
  scanline lang:init languages/verilog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scanline.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langInitCmd)
}
