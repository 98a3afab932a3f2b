// Package citation renders publications as citation strings across several
// style conventions and output encodings.
package citation

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/internal/publication"
)

// Style identifies a citation convention.
type Style string

// Supported styles.
const (
	APA     Style = "APA"
	MLA     Style = "MLA"
	AMA     Style = "AMA"
	NLM     Style = "NLM"
	Chicago Style = "CHICAGO"
	IEEE    Style = "IEEE"
	BibTeX  Style = "BIBTEX"
)

// Encoding selects the output flavor of a citation.
type Encoding string

// Supported encodings. Raw is plain text; HTML italicizes the title and
// journal and renders DOIs as anchors pointing at the DOI resolver.
const (
	Raw  Encoding = "raw"
	HTML Encoding = "html"
)

// assembler builds the citation string for one style. The encoding branch
// lives inside each assembler because the styles disagree on how an unknown
// encoding is rejected: APA, MLA and AMA wrap publication.ErrValidation,
// while NLM, Chicago and IEEE return ErrUnsupportedEncoding.
type assembler func(*publication.Publication, Encoding) (string, error)

var assemblers = map[Style]assembler{
	APA:     apaCitation,
	MLA:     mlaCitation,
	AMA:     amaCitation,
	NLM:     nlmCitation,
	Chicago: chicagoCitation,
	IEEE:    ieeeCitation,
	BibTeX:  bibtexCitation,
}

// Styles returns the supported styles in display order.
func Styles() []Style {
	return []Style{APA, MLA, AMA, NLM, Chicago, IEEE, BibTeX}
}

// Encodings returns the supported encodings.
func Encodings() []Encoding {
	return []Encoding{Raw, HTML}
}

// Generate renders pub in the given style and encoding. The style is
// matched case-insensitively; an unrecognized style fails with
// ErrUnsupportedFormat. BibTeX ignores the encoding entirely.
func Generate(pub *publication.Publication, style Style, enc Encoding) (string, error) {
	assemble, ok := assemblers[Style(strings.ToUpper(string(style)))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, style)
	}
	return assemble(pub, enc)
}
