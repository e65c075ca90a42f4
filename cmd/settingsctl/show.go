package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved settings and their sources",
	Long: `Show every recognized setting with its effective value, where the value came
from (default, file or environment) and which subsystem consumes it. Secret
values are always redacted.

Example:
  settingsctl show
  settingsctl show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		if output == "json" {
			out, err := cfg.FormatJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to render configuration: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}
		fmt.Print(cfg.FormatText())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
