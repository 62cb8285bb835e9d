package matchrank

import (
	"strings"

	"github.com/standardbeagle/matchrank/internal/normalize"
	"github.com/standardbeagle/matchrank/internal/pattern"
)

// Score classifies how well test matches query, evaluating the strategy
// cascade in strict priority order and returning the first hit. Only the
// case-sensitive equality step is case-sensitive; every other step matches
// case-insensitively, with diacritic variants folded together unless
// cfg.KeepDiacritics is set.
//
// An empty query is a degenerate case: it equals an empty test string and
// is a zero-length prefix of anything else.
func Score(test, query string, cfg Config) MatchResult {
	if query == "" {
		if test == "" {
			return MatchResult{Rank: CaseSensitiveEqual}
		}
		return MatchResult{Rank: StartsWith}
	}

	q := pattern.Compile(query, cfg.KeepDiacritics)

	if q.EqualSensitive.MatchString(test) {
		return MatchResult{Rank: CaseSensitiveEqual}
	}
	if q.EqualFold.MatchString(test) {
		return MatchResult{Rank: Equal}
	}
	if loc := q.Prefix.FindStringIndex(test); loc != nil {
		return MatchResult{Rank: StartsWith, Length: loc[1] - loc[0]}
	}
	// The word-prefix span includes the leading whitespace rune; report the
	// position right after it.
	if loc := q.WordPrefix.FindStringIndex(test); loc != nil {
		return MatchResult{Rank: WordStartsWith, Index: loc[0] + 1, Length: loc[1] - loc[0] - 1}
	}
	if loc := q.Contains.FindStringIndex(test); loc != nil {
		return MatchResult{Rank: Contains, Index: loc[0], Length: loc[1] - loc[0]}
	}
	if locs := q.Acronym.FindStringSubmatchIndex(test); locs != nil {
		indexes := make([]int, 0, (len(locs)-2)/2)
		for i := 2; i < len(locs); i += 2 {
			indexes = append(indexes, locs[i])
		}
		return MatchResult{Rank: Acronym, LetterIndexes: indexes}
	}
	return closenessScore(test, q)
}

// closenessScore is the fuzzy fallback: a single left-to-right scan that
// locates each query rune at or after the position following the previous
// hit. Every query rune must be found, so MatchedChars always equals the
// query length on success; Closeness therefore reduces to 1/Spread, and a
// tighter cluster of matched runes beats a looser one.
func closenessScore(test string, q *pattern.Query) MatchResult {
	folded := test
	if !q.KeepDiacritics {
		folded = normalize.Fold(folded)
	}
	haystack := []rune(strings.ToLower(folded))

	first, last := -1, -1
	pos := 0
	for _, want := range q.Folded {
		found := -1
		for i := pos; i < len(haystack); i++ {
			if haystack[i] == want {
				found = i
				break
			}
		}
		if found < 0 {
			return MatchResult{Rank: NoMatch}
		}
		if first < 0 {
			first = found
		}
		last = found
		pos = found + 1
	}

	spread := last + 1 - first
	matched := len(q.Folded)
	return MatchResult{
		Rank:         Matches,
		Spread:       spread,
		MatchedChars: matched,
		Closeness:    float64(matched) / float64(len(q.Folded)) / float64(spread),
	}
}
