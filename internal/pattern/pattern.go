// Package pattern compiles a query string into the set of regular
// expressions the ranking cascade needs, and caches the compiled form so
// that scoring thousands of candidates against one query compiles it once.
package pattern

import (
	"regexp"
	"strings"

	"github.com/standardbeagle/matchrank/internal/normalize"
)

// Query holds everything derived from a single query string. All fields are
// immutable after compilation; a *Query is safe to share across goroutines.
type Query struct {
	// Raw is the original query text.
	Raw string

	// KeepDiacritics records whether diacritic expansion was skipped.
	KeepDiacritics bool

	// Folded holds the lowercased, diacritic-folded query runes used by the
	// fuzzy subsequence scan.
	Folded []rune

	// EqualSensitive anchors the query start-to-end, case-sensitive.
	EqualSensitive *regexp.Regexp
	// EqualFold anchors the query start-to-end, case-insensitive.
	EqualFold *regexp.Regexp
	// Prefix matches the query at the start of the candidate.
	Prefix *regexp.Regexp
	// WordPrefix matches a whitespace character immediately followed by the
	// query anywhere in the candidate.
	WordPrefix *regexp.Regexp
	// Contains matches the query anywhere in the candidate.
	Contains *regexp.Regexp
	// Acronym matches each query character as the leading letter of
	// consecutive words, capturing each leading letter's position. Nil when
	// the query is empty.
	Acronym *regexp.Regexp
}

// compile builds a Query from scratch. Compile (cache.go) is the cached
// entry point callers should use.
func compile(query string, keepDiacritics bool) *Query {
	body := regexp.QuoteMeta(query)
	if !keepDiacritics {
		body = normalize.ExpandPattern(body)
	}

	folded := query
	if !keepDiacritics {
		folded = normalize.Fold(folded)
	}

	q := &Query{
		Raw:            query,
		KeepDiacritics: keepDiacritics,
		Folded:         []rune(strings.ToLower(folded)),
		EqualSensitive: regexp.MustCompile(`^` + body + `$`),
		EqualFold:      regexp.MustCompile(`(?i)^` + body + `$`),
		Prefix:         regexp.MustCompile(`(?i)^` + body),
		WordPrefix:     regexp.MustCompile(`(?i)\s` + body),
		Contains:       regexp.MustCompile(`(?i)` + body),
	}
	if acronym := acronymPattern(query, keepDiacritics); acronym != "" {
		q.Acronym = regexp.MustCompile(acronym)
	}
	return q
}

// acronymPattern builds a pattern requiring each query rune to be the
// leading letter of consecutive words. A word starts at the beginning of
// the candidate or after whitespace or a hyphen; the remainder of each word
// is consumed contiguously. Every leading letter is captured so the scorer
// can report its position.
func acronymPattern(query string, keepDiacritics bool) string {
	runes := []rune(query)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`(?i)(?:^|[\s-])`)
	for i, r := range runes {
		if i > 0 {
			b.WriteString(`[^\s-]*[\s-]+`)
		}
		b.WriteString(`(`)
		b.WriteString(letterPattern(r, keepDiacritics))
		b.WriteString(`)`)
	}
	b.WriteString(`[^\s-]*`)
	return b.String()
}

// letterPattern expands a single query rune for embedding in the acronym
// pattern, falling back to the escaped literal rune.
func letterPattern(r rune, keepDiacritics bool) string {
	if !keepDiacritics {
		if class := normalize.ExpandRune(r); class != "" {
			return class
		}
	}
	return regexp.QuoteMeta(string(r))
}
