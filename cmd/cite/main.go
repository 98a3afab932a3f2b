// Package main provides the cite CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Citation generator for journal articles",
	Long: `cite renders bibliographic records as citation strings.

It reads records from JSON or YAML files and formats them in APA, MLA,
AMA, NLM, Chicago and IEEE styles, as plain text or HTML, plus BibTeX
entries. All commands output JSON by default for easy integration with
other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
