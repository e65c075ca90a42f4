// Package main implements settingsctl, the operator CLI for inspecting and
// validating the loanpro backend settings.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loanpro/settings/internal/common/logging"
	"github.com/loanpro/settings/internal/config"
)

var (
	envFile       string
	overridesFile string
	debug         bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "settingsctl",
	Short: "Inspect and validate the loanpro backend settings",
	Long: `settingsctl resolves the backend settings the same way the backend does at
startup: documented defaults, then an optional JSON overrides file, then the
environment (with a .env file filling in anything the environment leaves
unset). It never connects to the database, mail or SMS providers; it only
tells you whether the process would be allowed to start.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(os.Getenv("LOG_LEVEL"), debug)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	rootCmd.PersistentFlags().StringVar(&overridesFile, "overrides", "", "Path to a JSON overrides file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func loadConfig() (*config.Config, error) {
	return config.Load(config.Options{
		EnvFile:       envFile,
		OverridesFile: overridesFile,
		Logger:        logging.New("settingsctl"),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
