// Package publication defines the bibliographic record that citations are
// generated from.
package publication

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields holds the raw construction inputs for a Publication. Optional
// integer fields use 0 for "not set"; optional strings use "".
type Fields struct {
	Authors    []string // Author names in citation order, each "Given [Middle] Family"
	Year       int      // Year of publication
	Month      int      // 1-12, 0 if unknown
	Title      string   // Title of the article or work
	Journal    string   // Journal or container name
	Volume     int      // Volume of the journal
	Issue      int      // Issue number of the journal
	Pages      string   // Page range (e.g., "23-45")
	DOI        string   // Bare DOI, no URL prefix
	Database   string   // Hosting database (e.g., Project MUSE); rendered by MLA only
	AccessDate string   // Date of access; kept for callers, no formatter reads it
	Citekey    string   // BibTeX entry key; derived from the first author and year when empty
}

// Publication is an immutable bibliographic record. Build it with New so the
// mandatory fields are enforced and the citekey is derived; every formatting
// function is a pure function of its fields.
type Publication struct {
	Authors    []string
	Year       int
	Month      int
	Title      string
	Journal    string
	Volume     int
	Issue      int
	Pages      string
	DOI        string
	Database   string
	AccessDate string
	Citekey    string
}

// New validates f and returns the constructed record. Authors, title,
// journal and year are mandatory; a missing one fails with ErrValidation.
// The author slice is copied so later mutation by the caller cannot reach
// the record.
func New(f Fields) (*Publication, error) {
	if len(f.Authors) == 0 {
		return nil, fmt.Errorf("%w: authors are required and cannot be empty", ErrValidation)
	}
	for _, author := range f.Authors {
		if author == "" {
			return nil, fmt.Errorf("%w: authors are required and cannot be empty", ErrValidation)
		}
	}
	if f.Title == "" {
		return nil, fmt.Errorf("%w: title is required and cannot be empty", ErrValidation)
	}
	if f.Journal == "" {
		return nil, fmt.Errorf("%w: journal or container name is required and cannot be empty", ErrValidation)
	}
	if f.Year == 0 {
		return nil, fmt.Errorf("%w: year is required and cannot be empty", ErrValidation)
	}

	authors := make([]string, len(f.Authors))
	copy(authors, f.Authors)

	citekey := f.Citekey
	if citekey == "" {
		citekey = defaultCitekey(authors[0], f.Year)
	}

	return &Publication{
		Authors:    authors,
		Year:       f.Year,
		Month:      f.Month,
		Title:      f.Title,
		Journal:    f.Journal,
		Volume:     f.Volume,
		Issue:      f.Issue,
		Pages:      f.Pages,
		DOI:        f.DOI,
		Database:   f.Database,
		AccessDate: f.AccessDate,
		Citekey:    citekey,
	}, nil
}

// defaultCitekey derives the BibTeX key from the first author's family name
// (the last whitespace-separated token) and the year, e.g. "doe2024".
func defaultCitekey(author string, year int) string {
	parts := strings.Fields(author)
	return strings.ToLower(parts[len(parts)-1]) + strconv.Itoa(year)
}

// monthAbbrevs maps month numbers 1-12 to three-letter abbreviations.
// Index 0 is unused.
var monthAbbrevs = [...]string{
	"",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the three-letter abbreviation for the record's month,
// or "" when the month is unset or out of range.
func (p *Publication) MonthName() string {
	if p.Month < 1 || p.Month > 12 {
		return ""
	}
	return monthAbbrevs[p.Month]
}
