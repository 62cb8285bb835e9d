package matchrank

// MatchResult is the outcome of scoring a single candidate string against a
// query. Rank identifies the tier; the remaining fields are per-tier
// payload and are only meaningful for the tiers listed on each field.
type MatchResult struct {
	// Rank is the match tier.
	Rank Ranking

	// Index is the byte offset where the match begins. Set for Contains
	// and WordStartsWith.
	Index int

	// Length is the byte length of the matched span. Set for Contains,
	// WordStartsWith and StartsWith.
	Length int

	// Spread is the distance covered by the fuzzy subsequence, from its
	// first matched rune to one past its last. Set for Matches.
	Spread int

	// MatchedChars is the number of query runes located by the fuzzy
	// subsequence scan; it always equals the query length for a successful
	// match. Set for Matches.
	MatchedChars int

	// Closeness = MatchedChars / queryLength / Spread. Tighter clustering
	// scores higher. Only used to break ties among Matches-tier results,
	// never to cross tiers. Set for Matches.
	Closeness float64

	// LetterIndexes holds, per query rune, the byte offset of the word
	// leading letter it matched. Set for Acronym.
	LetterIndexes []int
}

// RankingInfo is a MatchResult plus provenance: which candidate won, which
// accessor produced it, and whether the result cleared its threshold.
type RankingInfo struct {
	MatchResult

	// RankedValue is the winning candidate string.
	RankedValue string

	// AccessorIndex is the position of the winning accessor in the
	// accessor list, or -1 when the item itself was ranked or nothing
	// matched.
	AccessorIndex int

	// AccessorThreshold is the threshold the winning accessor resolved to,
	// falling back to the call-level threshold.
	AccessorThreshold Ranking

	// Passed reports whether Rank reached AccessorThreshold.
	Passed bool
}
