package genconfig

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and replaces every run of characters outside
// [a-z0-9] with a single "-". Leading and trailing separators are kept:
// "My Cool Tool!" becomes "my-cool-tool-".
func Slugify(s string) string {
	return nonSlugRun.ReplaceAllString(cases.Lower(language.Und).String(s), "-")
}
