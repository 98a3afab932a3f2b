// Package importer parses publication record files into validated publications.
package importer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yubetsu/cite/internal/publication"
)

// FlexibleInt can unmarshal from either a number or a numeric string, so
// record files may quote year, month, volume and issue.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	// Handle null
	if string(data) == "null" {
		*f = 0
		return nil
	}

	// Try number first
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	// Try string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return f.set(s)
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleInt", string(data))
}

func (f *FlexibleInt) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil {
		return f.set(s)
	}

	return fmt.Errorf("cannot unmarshal %q into FlexibleInt", value.Value)
}

func (f *FlexibleInt) set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into FlexibleInt", s)
	}
	*f = FlexibleInt(n)
	return nil
}

// Int returns the plain integer value.
func (f FlexibleInt) Int() int {
	return int(f)
}

// Entry represents a single publication record in an import file.
type Entry struct {
	Authors    []string    `json:"authors" yaml:"authors"`
	Year       FlexibleInt `json:"year" yaml:"year"`
	Month      FlexibleInt `json:"month" yaml:"month"`
	Title      string      `json:"title" yaml:"title"`
	Journal    string      `json:"journal" yaml:"journal"`
	Volume     FlexibleInt `json:"volume" yaml:"volume"`
	Issue      FlexibleInt `json:"issue" yaml:"issue"`
	Pages      string      `json:"pages" yaml:"pages"`
	DOI        string      `json:"doi" yaml:"doi"`
	Database   string      `json:"database" yaml:"database"`
	AccessDate string      `json:"access_date" yaml:"access_date"`
	Citekey    string      `json:"citekey" yaml:"citekey"`
}

// Parse picks the decoder from the file name extension: ".yaml" and ".yml"
// are YAML, everything else is JSON.
func Parse(data []byte, name string) ([]*publication.Publication, []error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses a JSON record file holding a single record or a list of
// records. Entries that fail validation are reported as errors alongside
// the publications that parsed cleanly.
func ParseJSON(data []byte) ([]*publication.Publication, []error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		var single Entry
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, []error{fmt.Errorf("parsing JSON records: %w", err)}
		}
		entries = []Entry{single}
	}
	return build(entries)
}

// ParseYAML parses a YAML record file holding a single record or a list of
// records, with the same error reporting as ParseJSON.
func ParseYAML(data []byte) ([]*publication.Publication, []error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		var single Entry
		if err2 := yaml.Unmarshal(data, &single); err2 != nil {
			return nil, []error{fmt.Errorf("parsing YAML records: %w", err)}
		}
		entries = []Entry{single}
	}
	return build(entries)
}

// build validates each entry and collects per-entry failures so one bad
// record does not sink the whole file.
func build(entries []Entry) ([]*publication.Publication, []error) {
	var pubs []*publication.Publication
	var errs []error

	for i, entry := range entries {
		pub, err := publication.New(publication.Fields{
			Authors:    entry.Authors,
			Year:       entry.Year.Int(),
			Month:      entry.Month.Int(),
			Title:      entry.Title,
			Journal:    entry.Journal,
			Volume:     entry.Volume.Int(),
			Issue:      entry.Issue.Int(),
			Pages:      entry.Pages,
			DOI:        entry.DOI,
			Database:   entry.Database,
			AccessDate: entry.AccessDate,
			Citekey:    entry.Citekey,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		pubs = append(pubs, pub)
	}

	return pubs, errs
}
