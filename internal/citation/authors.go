package citation

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/internal/publication"
)

// Each style formats and joins author names with its own rules, so the
// algorithms are kept as separate functions. Note the family-name
// asymmetry: AMA and NLM read it from the first token, while APA, MLA and
// IEEE read it from the last. Both readings are load-bearing for output
// compatibility and must not be unified.

// formatAuthorAPA renders one author as "Family, G. M." with a dotted
// initial for every token before the family name.
func formatAuthorAPA(author string) (string, error) {
	parts := strings.Fields(author)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNameFormat, author)
	}
	initials := make([]string, len(parts)-1)
	for i, part := range parts[:len(parts)-1] {
		initials[i] = firstRune(part) + "."
	}
	return parts[len(parts)-1] + ", " + strings.Join(initials, " "), nil
}

// FormatAuthorsAPA joins the record's authors per APA rules: an ampersand
// before the final author, and for lists longer than twenty an ellipsis
// between the first nineteen and the last.
func FormatAuthorsAPA(pub *publication.Publication) (string, error) {
	formatted := make([]string, len(pub.Authors))
	for i, author := range pub.Authors {
		s, err := formatAuthorAPA(author)
		if err != nil {
			return "", err
		}
		formatted[i] = s
	}

	switch n := len(formatted); {
	case n == 1:
		return formatted[0], nil
	case n == 2:
		return formatted[0] + " & " + formatted[1], nil
	case n <= 20:
		return strings.Join(formatted[:n-1], ", ") + ", & " + formatted[n-1], nil
	default:
		return strings.Join(formatted[:19], ", ") + ", ... " + formatted[n-1], nil
	}
}

// formatAuthorMLA renders one author by list position. For lists of three
// or more only the first author is rendered ("Family, Given et al."); every
// later author collapses to "" and is dropped by FormatAuthorsMLA.
func formatAuthorMLA(author string, index, total int) (string, error) {
	parts := strings.Fields(author)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNameFormat, author)
	}
	first := strings.Join(parts[:len(parts)-1], " ")
	last := parts[len(parts)-1]

	switch {
	case total == 1:
		return last + ", " + first, nil
	case total == 2 && index == 0:
		return last + ", " + first, nil
	case total == 2 && index == 1:
		return "and " + first + " " + last, nil
	case total > 2 && index == 0:
		return last + ", " + first + " et al.", nil
	}
	return "", nil
}

// FormatAuthorsMLA joins the record's authors per MLA rules.
func FormatAuthorsMLA(pub *publication.Publication) (string, error) {
	var formatted []string
	total := len(pub.Authors)
	for i, author := range pub.Authors {
		s, err := formatAuthorMLA(author, i, total)
		if err != nil {
			return "", err
		}
		if s != "" {
			formatted = append(formatted, s)
		}
	}
	return strings.Join(formatted, " "), nil
}

// formatAuthorFamilyFirst renders one author as "Family GM": the first
// token is the family name, followed by the initials of the second and
// (when present) third tokens with no separator. Shared by AMA and NLM,
// which format individual names identically.
func formatAuthorFamilyFirst(author string) (string, error) {
	parts := strings.Fields(author)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNameFormat, author)
	}
	name := parts[0] + " " + firstRune(parts[1])
	if len(parts) > 2 {
		name += firstRune(parts[2])
	}
	return name, nil
}

// FormatAuthorsAMA joins the record's authors per AMA rules: all authors
// comma-joined, or the first three plus "et al." when there are more than
// six.
func FormatAuthorsAMA(pub *publication.Publication) (string, error) {
	formatted := make([]string, len(pub.Authors))
	for i, author := range pub.Authors {
		s, err := formatAuthorFamilyFirst(author)
		if err != nil {
			return "", err
		}
		formatted[i] = s
	}
	if len(formatted) > 6 {
		return strings.Join(formatted[:3], ", ") + ", et al.", nil
	}
	return strings.Join(formatted, ", "), nil
}

// FormatAuthorsNLM joins the record's authors per NLM rules: all authors
// comma-joined, or the first three plus "and others" when there are more
// than three.
func FormatAuthorsNLM(pub *publication.Publication) (string, error) {
	formatted := make([]string, len(pub.Authors))
	for i, author := range pub.Authors {
		s, err := formatAuthorFamilyFirst(author)
		if err != nil {
			return "", err
		}
		formatted[i] = s
	}
	if len(formatted) > 3 {
		return strings.Join(formatted[:3], ", ") + ", and others", nil
	}
	return strings.Join(formatted, ", "), nil
}

// FormatAuthorsChicago joins the record's authors per Chicago rules. Author
// strings are used verbatim, with no name reordering.
func FormatAuthorsChicago(pub *publication.Publication) (string, error) {
	authors := pub.Authors
	switch len(authors) {
	case 0:
		return "", fmt.Errorf("%w: no authors provided", publication.ErrValidation)
	case 1:
		return authors[0], nil
	case 2:
		return authors[0] + " and " + authors[1], nil
	case 3:
		return strings.Join(authors[:2], ", ") + ", and " + authors[2], nil
	default:
		return authors[0] + " et al.", nil
	}
}

// FormatAuthorsIEEE renders each author as "G. Family" and joins the list
// with an "et al." cutoff at six authors for the reference-list form, or
// three when inText is set. Single-token names keep the shared token for
// both the initial and the family name, so IEEE never rejects a name.
func FormatAuthorsIEEE(pub *publication.Publication, inText bool) string {
	formatted := make([]string, len(pub.Authors))
	for i, author := range pub.Authors {
		parts := strings.Fields(author)
		formatted[i] = firstRune(parts[0]) + ". " + parts[len(parts)-1]
	}

	cutoff := 6
	if inText {
		cutoff = 3
	}
	if len(formatted) >= cutoff {
		return formatted[0] + " et al."
	}
	return strings.Join(formatted[:len(formatted)-1], ", ") + " and " + formatted[len(formatted)-1]
}

// firstRune returns the first rune of s as a string.
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
