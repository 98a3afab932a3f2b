package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yubetsu/cite/internal/citation"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported citation styles and encodings",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func runFormats(cmd *cobra.Command, args []string) error {
	styles := make([]string, 0, len(citation.Styles()))
	for _, s := range citation.Styles() {
		styles = append(styles, string(s))
	}
	encodings := make([]string, 0, len(citation.Encodings()))
	for _, e := range citation.Encodings() {
		encodings = append(encodings, string(e))
	}

	if humanOutput {
		fmt.Println("Styles:")
		for _, s := range styles {
			fmt.Printf("  %s\n", s)
		}
		fmt.Println("Encodings:")
		for _, e := range encodings {
			fmt.Printf("  %s\n", e)
		}
		return nil
	}
	return outputJSON(FormatsResponse{Styles: styles, Encodings: encodings})
}
