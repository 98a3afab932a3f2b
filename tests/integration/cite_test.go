// Package integration exercises the full record-file to citation pipeline.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yubetsu/cite/internal/citation"
	"github.com/yubetsu/cite/internal/export"
	"github.com/yubetsu/cite/internal/importer"
)

// writeRecords writes a record file into a temp dir and returns its path.
func writeRecords(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestYAMLFileToCitations(t *testing.T) {
	path := writeRecords(t, "refs.yaml", `- authors:
    - John Doe
    - Jane Smith
    - Alice Johnson
  year: 2024
  month: 9
  title: A Comprehensive Study on Something Interesting
  journal: Journal of Interesting Studies
  volume: 34
  issue: 2
  pages: 123-145
  doi: 10.1000/j.jis.2024.09.001
`)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pubs, errs := importer.Parse(data, path)
	if len(errs) != 0 {
		t.Fatalf("Parse() errs = %v", errs)
	}
	if len(pubs) != 1 {
		t.Fatalf("Parse() returned %d publications, want 1", len(pubs))
	}

	got, err := citation.Generate(pubs[0], citation.APA, citation.Raw)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "Doe, J., Smith, J., & Johnson, A. (2024). A Comprehensive Study on Something Interesting. Journal of Interesting Studies, 34(2), 123-145. https://doi.org/10.1000/j.jis.2024.09.001"
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}

	// Every style and encoding renders without error for a valid record.
	for _, style := range citation.Styles() {
		for _, enc := range citation.Encodings() {
			if _, err := citation.Generate(pubs[0], style, enc); err != nil {
				t.Errorf("Generate(%s, %s) error = %v", style, enc, err)
			}
		}
	}
}

func TestJSONFileToBibTeX(t *testing.T) {
	path := writeRecords(t, "refs.json", `[
		{
			"authors": ["John Doe"],
			"year": 2024,
			"title": "First Study",
			"journal": "Journal of Studies",
			"pages": "1-10"
		},
		{
			"authors": ["Jane Smith"],
			"year": "2025",
			"title": "Second Study",
			"journal": "Journal of Studies"
		}
	]`)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pubs, errs := importer.Parse(data, path)
	if len(errs) != 0 {
		t.Fatalf("Parse() errs = %v", errs)
	}

	got := export.ToBibTeXList(pubs)

	if !strings.HasPrefix(got, "@article{doe2024,") {
		t.Errorf("first entry should open with the derived citekey, got:\n%s", got)
	}
	if !strings.Contains(got, "pages = {1--10}") {
		t.Errorf("page range should use double hyphens, got:\n%s", got)
	}
	if !strings.Contains(got, "\n\n@article{smith2025,") {
		t.Errorf("entries should be separated by a blank line, got:\n%s", got)
	}
}

func TestInvalidRecordsAreReported(t *testing.T) {
	path := writeRecords(t, "refs.json", `[
		{"authors": ["John Doe"], "year": 2024, "title": "Kept", "journal": "Journal of Studies"},
		{"authors": [""], "year": 2024, "title": "Dropped", "journal": "Journal of Studies"},
		{"authors": ["Jane Smith"], "year": 2024, "title": "", "journal": "Journal of Studies"}
	]`)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pubs, errs := importer.Parse(data, path)
	if len(pubs) != 1 {
		t.Fatalf("Parse() returned %d publications, want 1", len(pubs))
	}
	if len(errs) != 2 {
		t.Fatalf("Parse() returned %d errors, want 2", len(errs))
	}
	if pubs[0].Title != "Kept" {
		t.Errorf("surviving record title = %q, want %q", pubs[0].Title, "Kept")
	}
}
