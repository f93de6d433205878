// Package textutil provides the normalization and token-set helpers the
// confidence scorer is built on. All functions are total over arbitrary
// strings and keep no state between calls.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize lowercases s using full Unicode case folding, replaces every run
// of characters that are neither letters nor numbers with a single space,
// collapses whitespace runs, and trims the result. Empty or all-punctuation
// input normalizes to the empty string. Idempotent.
func Normalize(s string) string {
	// A cases.Caser is not safe for concurrent use; create one per call.
	folded := cases.Fold().String(s)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Join(strings.Fields(mapped), " ")
}

// Tail returns the last min(n, len) characters of s, counted in runes.
// n of zero or less yields the empty string.
func Tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// WordSet splits s on whitespace and collects the unique tokens.
// Empty input yields an empty set.
func WordSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}

// Jaccard returns the Jaccard index of two token sets: intersection size over
// union size. Returns 0 when either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
