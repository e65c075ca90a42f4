package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loanpro/settings/internal/config"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate a .env skeleton for the recognized settings",
	Long: `Generate a .env skeleton covering every recognized setting, grouped by
consumer. Required settings are left blank and flagged; optional settings are
pre-filled with their documented defaults.

Example:
  settingsctl template
  settingsctl template --out .env.example`,
	Run: func(cmd *cobra.Command, args []string) {
		outPath, _ := cmd.Flags().GetString("out")

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", outPath, err)
				os.Exit(1)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := config.WriteEnvTemplate(out); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write template: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringP("out", "f", "", "Write the template to a file instead of stdout")
}
