package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NeCr00/passpwn/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "passpwn",
	Short: "Generate password wordlists from pattern templates",
	Long: "Passpwn expands pattern templates over configurable value sets\n" +
		"(years, seasons, number sequences, special characters), optionally\n" +
		"applies leetspeak substitution, filters by length and policy, and\n" +
		"emits a deduplicated wordlist.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
