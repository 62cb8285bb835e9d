package matchrank

import "fmt"

// Ranking is the ordinal quality tier of a match, from NoMatch up to
// CaseSensitiveEqual. Higher values always indicate a better match.
// Rankings serve double duty as threshold cutoffs and as sort keys.
type Ranking int

const (
	// NoMatch means no strategy matched the candidate at all.
	NoMatch Ranking = iota
	// Matches is a fuzzy match: every query character appears in the
	// candidate as an in-order (not necessarily contiguous) subsequence.
	Matches
	// Acronym means the query characters matched the leading letters of
	// consecutive words in the candidate.
	Acronym
	// Contains means the query occurs somewhere inside the candidate.
	Contains
	// WordStartsWith means the query occurs at the start of a word.
	WordStartsWith
	// StartsWith means the candidate begins with the query.
	StartsWith
	// Equal is a case-insensitive full match.
	Equal
	// CaseSensitiveEqual is a case-sensitive full match, the best tier.
	CaseSensitiveEqual
)

var rankingNames = map[Ranking]string{
	NoMatch:            "no-match",
	Matches:            "matches",
	Acronym:            "acronym",
	Contains:           "contains",
	WordStartsWith:     "word-starts-with",
	StartsWith:         "starts-with",
	Equal:              "equal",
	CaseSensitiveEqual: "case-sensitive-equal",
}

// String returns the kebab-case name of the ranking tier.
func (r Ranking) String() string {
	if name, ok := rankingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ranking(%d)", int(r))
}

// ParseRanking converts a tier name (as produced by String) back to a
// Ranking. Used by the CLI and config file to specify thresholds.
func ParseRanking(name string) (Ranking, error) {
	for rank, n := range rankingNames {
		if n == name {
			return rank, nil
		}
	}
	return NoMatch, fmt.Errorf("unknown ranking %q", name)
}
