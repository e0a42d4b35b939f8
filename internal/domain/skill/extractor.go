package skill

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MaxExtracted = 50

// Extract returns candidate skills found in free text: alphabetic tokens longer than
// two runes, capitalized, deduplicated and sorted. At most MaxExtracted are returned.
// The result is never nil.
func Extract(text string) []string {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		if !isAlpha(tok) || utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		seen[capitalize(strings.Trim(tok, ",.;"))] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	if len(out) > MaxExtracted {
		out = out[:MaxExtracted]
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
