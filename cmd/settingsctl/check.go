package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loanpro/settings/internal/config"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the environment against the required settings",
	Long: `Validate the environment against the required settings.

The command fails with a non-zero exit code when any required setting is
absent or any present value is invalid, listing every problem by its
environment variable name.

Example:
  settingsctl check
  settingsctl check --env-file deploy/.env --overrides deploy/overrides.json`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Configuration check failed:")
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(os.Stderr, "  - %s\n", line)
			}
			os.Exit(1)
		}

		fromEnv := 0
		for _, a := range cfg.Attributes() {
			if a.Source == config.SourceEnvironment {
				fromEnv++
			}
		}
		fmt.Printf("Configuration OK (engine=%s, %d of %d settings from environment)\n",
			cfg.Database.Engine, fromEnv, len(cfg.Attributes()))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
