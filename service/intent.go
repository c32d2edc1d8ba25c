package service

import (
	"regexp"
	"strings"
)

// isFinal reports whether the message contains any finality phrase. Matching
// is a plain substring check over the lowercased text, not tokenized.
func isFinal(phrases []string, text string) bool {
	t := strings.ToLower(text)
	for _, k := range phrases {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// compileNegation builds the anchored prefix matcher for bare refusals.
// Anchoring distinguishes a flat "no" from a sentence that merely mentions a
// negation word later on.
func compileNegation(words []string) *regexp.Regexp {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)^\s*(` + strings.Join(escaped, "|") + `)\b`)
}

func isShortNegation(re *regexp.Regexp, text string) bool {
	return re.MatchString(strings.TrimSpace(strings.ToLower(text)))
}
