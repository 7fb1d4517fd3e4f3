// Package cmd defines the command-line interface for beemon.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory scanned for sensor exports")
	rootCmd.PersistentFlags().String("out-dir", contract.DefaultOutDir, "Directory chart PNGs are written into")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Explicit CSV export path (skips the latest-file lookup)")
	rootCmd.PersistentFlags().String("pattern", schema.DefaultInputPattern, "Glob pattern for locating exports in the data directory")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("remote-folder", contract.DefaultRemoteFolder, "Google Drive folder receiving uploads")
	rootCmd.PersistentFlags().String("credentials", "", "Path to a service-account JSON file (falls back to "+contract.CredentialsEnvVar+")")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
