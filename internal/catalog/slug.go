package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var multiHyphen = regexp.MustCompile(`-{2,}`)

// Slugify converts a product name into a URL-safe filename stem. It
// lowercases the input, replaces spaces and underscores with hyphens, strips
// characters that are not letters, digits, or hyphens, collapses runs of
// hyphens, and trims leading/trailing hyphens. Unicode letters are preserved.
func Slugify(name string) string {
	// Normalize to NFC so combining accents become precomposed runes.
	s := norm.NFC.String(name)
	s = strings.ToLower(s)

	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var buf strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			buf.WriteRune(r)
		}
	}
	s = buf.String()

	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
