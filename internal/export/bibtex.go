// Package export provides functions to export publications to exchange formats.
package export

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/internal/publication"
)

// ToBibTeX converts a publication to a BibTeX @article entry. Authors are
// joined with " and " in their raw form, optional fields are emitted only
// when set, and hyphens in the page range become the BibTeX double hyphen.
func ToBibTeX(pub *publication.Publication) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@article{%s,\n", pub.Citekey))
	b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(pub.Authors, " and ")))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", pub.Title))
	b.WriteString(fmt.Sprintf("  journal = {%s},\n", pub.Journal))
	b.WriteString(fmt.Sprintf("  year = {%d},\n", pub.Year))

	if pub.Volume != 0 {
		b.WriteString(fmt.Sprintf("  volume = {%d},\n", pub.Volume))
	}
	if pub.Issue != 0 {
		b.WriteString(fmt.Sprintf("  number = {%d},\n", pub.Issue))
	}
	if pub.Pages != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", strings.ReplaceAll(pub.Pages, "-", "--")))
	}
	if pub.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", pub.DOI))
	}
	b.WriteString("}")

	return b.String()
}

// ToBibTeXList converts multiple publications to BibTeX format, separated
// by blank lines.
func ToBibTeXList(pubs []*publication.Publication) string {
	entries := make([]string, len(pubs))
	for i, pub := range pubs {
		entries[i] = ToBibTeX(pub)
	}
	return strings.Join(entries, "\n\n")
}
