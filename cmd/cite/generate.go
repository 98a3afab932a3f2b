package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yubetsu/cite/internal/citation"
	"github.com/yubetsu/cite/internal/publication"
)

var (
	generateFormat   string
	generateEncoding string
	generateAll      bool
)

func init() {
	generateCmd.Flags().StringVar(&generateFormat, "format", "", "Citation style (APA, MLA, AMA, NLM, CHICAGO, IEEE, BIBTEX)")
	generateCmd.Flags().StringVar(&generateEncoding, "encoding", "", `Output encoding ("raw" or "html")`)
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Render every style and encoding")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <records-file>",
	Short: "Render citations for the records in a JSON or YAML file",
	Long: `Render citations for the records in a JSON or YAML file.

Defaults for --format and --encoding come from the CITE_FORMAT and
CITE_ENCODING environment variables (a .env file is honored), falling
back to APA and raw.

Examples:
  cite generate refs.yaml --format apa
  cite generate refs.json --format ieee --encoding html
  cite generate - --all < refs.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	format := generateFormat
	if format == "" {
		format = os.Getenv("CITE_FORMAT")
	}
	if format == "" {
		format = string(citation.APA)
	}
	encoding := generateEncoding
	if encoding == "" {
		encoding = os.Getenv("CITE_ENCODING")
	}
	if encoding == "" {
		encoding = string(citation.Raw)
	}

	pubs := readRecords(args[0])
	style := citation.Style(strings.ToUpper(format))

	var results []CitationResponse
	for _, pub := range pubs {
		if generateAll {
			results = append(results, renderAll(pub)...)
			continue
		}
		results = append(results, render(pub, style, citation.Encoding(encoding)))
	}

	if humanOutput {
		for _, r := range results {
			fmt.Printf("%s\n", r.Citation)
		}
		return nil
	}
	return outputJSON(results)
}

// render generates one citation, exiting with the appropriate code on failure.
func render(pub *publication.Publication, style citation.Style, enc citation.Encoding) CitationResponse {
	s, err := citation.Generate(pub, style, enc)
	if err != nil {
		code := ExitData
		if errors.Is(err, citation.ErrUnsupportedFormat) ||
			errors.Is(err, citation.ErrUnsupportedEncoding) ||
			errors.Is(err, publication.ErrValidation) {
			code = ExitUsage
		}
		exitWithError(code, "%s: %v", pub.Citekey, err)
	}
	resp := CitationResponse{
		Citekey:  pub.Citekey,
		Style:    string(style),
		Encoding: string(enc),
		Citation: s,
	}
	if style == citation.BibTeX {
		resp.Encoding = ""
	}
	return resp
}

// renderAll generates every style and encoding combination for one record.
// BibTeX is encoding-agnostic and rendered once.
func renderAll(pub *publication.Publication) []CitationResponse {
	var results []CitationResponse
	for _, style := range citation.Styles() {
		if style == citation.BibTeX {
			results = append(results, render(pub, style, citation.Raw))
			continue
		}
		for _, enc := range citation.Encodings() {
			results = append(results, render(pub, style, enc))
		}
	}
	return results
}
