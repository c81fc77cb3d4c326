// Package title normalizes and compares movie titles.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sequelRegex matches Roman numerals II-IX after a space. A lone "I" or "X"
// and a leading numeral are left alone ("I, Robot", "American History X").
var sequelRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var sequelNumbers = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var leadingArticles = []string{"the ", "a ", "an "}

// Clean reduces a title to a comparable form: case folded, accents and
// punctuation stripped, leading articles dropped from each colon-separated
// part, sequel numerals converted to digits, whitespace collapsed.
//
//	Clean("Léon: The Professional") == "leon professional"
//	Clean("Rocky II")               == "rocky 2"
func Clean(s string) string {
	s = cases.Fold().String(s)
	s = sequelRegex.ReplaceAllStringFunc(s, func(m string) string {
		return " " + sequelNumbers[strings.ToLower(strings.TrimSpace(m))]
	})
	s = stripAccents(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ").Replace(s)

	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = dropArticle(p)
	}
	s = strings.Join(parts, " ")

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func dropArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, a := range leadingArticles {
		if rest, ok := strings.CutPrefix(s, a); ok {
			return rest
		}
	}
	return s
}
