package citation

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/internal/export"
	"github.com/yubetsu/cite/internal/publication"
)

// Optional fields carry their own leading punctuation, so an absent field
// leaves no stray separators behind. Chicago and IEEE are the exception:
// they interpolate volume, issue and pages whether or not they are set
// (an unset volume or issue renders as 0, unset pages as an empty string).
// That leak is longstanding output and is kept for compatibility.

// doiURL returns the resolver URL for a DOI.
func doiURL(doi string) string {
	return "https://doi.org/" + doi
}

// doiAnchor wraps text in an anchor pointing at the DOI resolver.
func doiAnchor(doi, text string) string {
	return "<a href='" + doiURL(doi) + "'>" + text + "</a>"
}

// validateEncoding is the APA/MLA/AMA rejection path: anything outside raw
// and html is a validation failure, checked before any author formatting.
func validateEncoding(enc Encoding) error {
	if enc != Raw && enc != HTML {
		return fmt.Errorf("%w: invalid encoding %q, use %q or %q", publication.ErrValidation, enc, Raw, HTML)
	}
	return nil
}

func apaCitation(pub *publication.Publication, enc Encoding) (string, error) {
	if err := validateEncoding(enc); err != nil {
		return "", err
	}
	authors, err := FormatAuthorsAPA(pub)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch enc {
	case Raw:
		fmt.Fprintf(&b, "%s (%d). %s. %s", authors, pub.Year, pub.Title, pub.Journal)
		if pub.Volume != 0 {
			fmt.Fprintf(&b, ", %d", pub.Volume)
		}
		if pub.Issue != 0 {
			fmt.Fprintf(&b, "(%d)", pub.Issue)
		}
		if pub.Pages != "" {
			fmt.Fprintf(&b, ", %s", pub.Pages)
		}
		fmt.Fprintf(&b, ". %s", doiURL(pub.DOI))
	case HTML:
		fmt.Fprintf(&b, "%s (%d). <i>%s</i>. <i>%s</i>", authors, pub.Year, pub.Title, pub.Journal)
		if pub.Volume != 0 {
			fmt.Fprintf(&b, ", <b>%d</b>", pub.Volume)
		}
		if pub.Issue != 0 {
			fmt.Fprintf(&b, "(%d)", pub.Issue)
		}
		if pub.Pages != "" {
			fmt.Fprintf(&b, ", %s", pub.Pages)
		}
		fmt.Fprintf(&b, ". %s", doiAnchor(pub.DOI, doiURL(pub.DOI)))
	}
	return b.String(), nil
}

func mlaCitation(pub *publication.Publication, enc Encoding) (string, error) {
	if err := validateEncoding(enc); err != nil {
		return "", err
	}
	authors, err := FormatAuthorsMLA(pub)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch enc {
	case Raw:
		fmt.Fprintf(&b, "%s. \"%s.\" %s", authors, pub.Title, pub.Journal)
	case HTML:
		fmt.Fprintf(&b, "%s. \"<i>%s</i>.\" <i>%s</i>", authors, pub.Title, pub.Journal)
	}

	if pub.Volume != 0 {
		fmt.Fprintf(&b, ", vol. %d", pub.Volume)
	}
	if pub.Issue != 0 {
		fmt.Fprintf(&b, ", no. %d", pub.Issue)
	}
	if pub.Pages != "" {
		fmt.Fprintf(&b, ", pp. %s", pub.Pages)
	}
	fmt.Fprintf(&b, ", %d.", pub.Year)

	if pub.Database != "" {
		if enc == HTML {
			fmt.Fprintf(&b, " <i>%s</i>.", pub.Database)
		} else {
			fmt.Fprintf(&b, " %s.", pub.Database)
		}
	}
	if pub.DOI != "" {
		if enc == HTML {
			fmt.Fprintf(&b, " doi:%s.", doiAnchor(pub.DOI, pub.DOI))
		} else {
			fmt.Fprintf(&b, " doi:%s.", pub.DOI)
		}
	}
	return b.String(), nil
}

func amaCitation(pub *publication.Publication, enc Encoding) (string, error) {
	if err := validateEncoding(enc); err != nil {
		return "", err
	}
	authors, err := FormatAuthorsAMA(pub)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch enc {
	case Raw:
		fmt.Fprintf(&b, "%s. %s. %s. %d;", authors, pub.Title, pub.Journal, pub.Year)
		if pub.Volume != 0 {
			fmt.Fprintf(&b, "%d", pub.Volume)
		}
	case HTML:
		fmt.Fprintf(&b, "%s. <i>%s</i>. <i>%s</i>. %d;", authors, pub.Title, pub.Journal, pub.Year)
		// The HTML form carries a space before the volume; the raw form
		// does not. Inherited output, kept as-is.
		if pub.Volume != 0 {
			fmt.Fprintf(&b, " %d", pub.Volume)
		}
	}

	if pub.Issue != 0 {
		fmt.Fprintf(&b, "(%d)", pub.Issue)
	}
	if pub.Pages != "" {
		fmt.Fprintf(&b, ":%s.", pub.Pages)
	}
	if pub.DOI != "" {
		if enc == HTML {
			fmt.Fprintf(&b, " doi:%s.", doiAnchor(pub.DOI, pub.DOI))
		} else {
			fmt.Fprintf(&b, " doi:%s.", pub.DOI)
		}
	}
	return b.String(), nil
}

func nlmCitation(pub *publication.Publication, enc Encoding) (string, error) {
	switch enc {
	case Raw:
		return nlmBody(pub, false)
	case HTML:
		return nlmBody(pub, true)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
}

func nlmBody(pub *publication.Publication, html bool) (string, error) {
	authors, err := FormatAuthorsNLM(pub)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. %s. %s.", authors, pub.Title, pub.Journal)
	if month := pub.MonthName(); month != "" {
		fmt.Fprintf(&b, " %d %s;", pub.Year, month)
	} else {
		fmt.Fprintf(&b, " %d;", pub.Year)
	}
	if pub.Volume != 0 {
		fmt.Fprintf(&b, "%d", pub.Volume)
	}
	if pub.Issue != 0 {
		fmt.Fprintf(&b, "(%d)", pub.Issue)
	}
	if pub.Pages != "" {
		fmt.Fprintf(&b, ":%s", pub.Pages)
	}
	if pub.DOI != "" {
		if html {
			fmt.Fprintf(&b, ". doi:%s.", doiAnchor(pub.DOI, pub.DOI))
		} else {
			fmt.Fprintf(&b, ". doi:%s.", pub.DOI)
		}
	}
	return b.String(), nil
}

func chicagoCitation(pub *publication.Publication, enc Encoding) (string, error) {
	switch enc {
	case Raw:
		return chicagoBody(pub, false)
	case HTML:
		return chicagoBody(pub, true)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
}

func chicagoBody(pub *publication.Publication, html bool) (string, error) {
	authors, err := FormatAuthorsChicago(pub)
	if err != nil {
		return "", err
	}

	date := fmt.Sprintf("(%d)", pub.Year)
	if month := pub.MonthName(); month != "" {
		date = fmt.Sprintf("(%s %d)", month, pub.Year)
	}

	var citation string
	if html {
		citation = fmt.Sprintf("%s. \"<i>%s</i>.\" <i>%s</i> %d, no. %d %s: %s.",
			authors, pub.Title, pub.Journal, pub.Volume, pub.Issue, date, pub.Pages)
	} else {
		citation = fmt.Sprintf("%s. \"%s.\" %s %d, no. %d %s: %s.",
			authors, pub.Title, pub.Journal, pub.Volume, pub.Issue, date, pub.Pages)
	}
	if pub.DOI != "" {
		if html {
			citation += " " + doiAnchor(pub.DOI, doiURL(pub.DOI)) + "."
		} else {
			citation += " " + doiURL(pub.DOI) + "."
		}
	}
	return citation, nil
}

func ieeeCitation(pub *publication.Publication, enc Encoding) (string, error) {
	switch enc {
	case Raw:
		return ieeeBody(pub, false), nil
	case HTML:
		return ieeeBody(pub, true), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
}

func ieeeBody(pub *publication.Publication, html bool) string {
	authors := FormatAuthorsIEEE(pub, false)

	var citation string
	if html {
		citation = fmt.Sprintf("%s, \"<i>%s</i>,\" <i>%s</i>, vol. %d, no. %d, pp. %s, %d.",
			authors, pub.Title, pub.Journal, pub.Volume, pub.Issue, pub.Pages, pub.Year)
	} else {
		citation = fmt.Sprintf("%s, \"%s,\" %s, vol. %d, no. %d, pp. %s, %d.",
			authors, pub.Title, pub.Journal, pub.Volume, pub.Issue, pub.Pages, pub.Year)
	}
	if pub.DOI != "" {
		if html {
			citation += fmt.Sprintf(" doi: %s.", doiAnchor(pub.DOI, pub.DOI))
		} else {
			citation += fmt.Sprintf(" doi: %s.", pub.DOI)
		}
	}
	return citation
}

// bibtexCitation is encoding-agnostic; the encoding argument is ignored.
func bibtexCitation(pub *publication.Publication, _ Encoding) (string, error) {
	return export.ToBibTeX(pub), nil
}
