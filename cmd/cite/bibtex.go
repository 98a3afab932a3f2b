package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yubetsu/cite/internal/export"
)

func init() {
	rootCmd.AddCommand(bibtexCmd)
}

var bibtexCmd = &cobra.Command{
	Use:   "bibtex <records-file>",
	Short: "Export records as BibTeX entries",
	Long: `Export every record in a JSON or YAML file as a BibTeX entry.

Examples:
  cite bibtex refs.yaml --human > refs.bib
  cite bibtex refs.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBibtex,
}

func runBibtex(cmd *cobra.Command, args []string) error {
	pubs := readRecords(args[0])

	if humanOutput {
		fmt.Println(export.ToBibTeXList(pubs))
		return nil
	}

	results := make([]CitationResponse, len(pubs))
	for i, pub := range pubs {
		results[i] = CitationResponse{
			Citekey:  pub.Citekey,
			Style:    "BIBTEX",
			Citation: export.ToBibTeX(pub),
		}
	}
	return outputJSON(results)
}
