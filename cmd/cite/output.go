package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CitationResponse is one rendered citation.
type CitationResponse struct {
	Citekey  string `json:"citekey"`
	Style    string `json:"style"`
	Encoding string `json:"encoding,omitempty"`
	Citation string `json:"citation"`
}

// FormatsResponse lists the supported styles and encodings.
type FormatsResponse struct {
	Styles    []string `json:"styles"`
	Encodings []string `json:"encodings"`
}
