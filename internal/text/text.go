// Package text provides small string helpers.
package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.Und)
	title = cases.Title(language.Und)
)

// CamelCase converts s to camelCase. Runs of characters other than ASCII
// letters and digits separate words; noStrip adds regexp character-class
// fragments that are kept inside words instead.
//
//	CamelCase("hello-big_world")    // "helloBigWorld"
//	CamelCase("data-id.v2", `\.`)  // "dataId.v2"
func CamelCase(s string, noStrip ...string) string {
	sep := regexp.MustCompile(`[^a-zA-Z0-9` + strings.Join(noStrip, "") + `]+`)
	words := sep.Split(lower.String(s), -1)

	if len(words) == 1 {
		return words[0]
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}

	out := []rune(b.String())
	if len(out) == 0 {
		return ""
	}
	return lower.String(string(out[0])) + string(out[1:])
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. An empty suffix always matches.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}
