package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanupString normalizes user-entered event text: collapses whitespace
// runs, uppercases the first letter of each word and drops a trailing
// period.
func CleanupString(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = cases.Title(language.English).String(s)
	return strings.TrimSuffix(s, ".")
}
