package matchrank

// Accessor derives zero or more candidate strings from an item, optionally
// bounding or thresholding the scores of the candidates it produces.
// MinRanking, MaxRanking and Threshold are nil when unset: the minimum
// defaults to NoMatch, the maximum to CaseSensitiveEqual, and the threshold
// inherits the call-level Config value.
type Accessor[T any] struct {
	// Get extracts candidate strings from an item. A nil return
	// contributes no candidates; returned slices pass through unchanged.
	Get func(item T) []string

	// MinRanking promotes any actual match (Matches or better) scoring
	// below it up to this rank. It never rescues a NoMatch.
	MinRanking *Ranking

	// MaxRanking caps the rank of every candidate this accessor produces,
	// even exact equals.
	MaxRanking *Ranking

	// Threshold overrides the call-level pass threshold for candidates
	// from this accessor.
	Threshold *Ranking
}

// AccessorFunc wraps a single-string extraction function as an Accessor.
func AccessorFunc[T any](get func(item T) string) Accessor[T] {
	return Accessor[T]{Get: func(item T) []string {
		return []string{get(item)}
	}}
}

// AccessorSliceFunc wraps a multi-string extraction function as an Accessor.
func AccessorSliceFunc[T any](get func(item T) []string) Accessor[T] {
	return Accessor[T]{Get: get}
}

// accessorAttributes is an Accessor resolved against the call-level
// defaults, done once before extraction begins.
type accessorAttributes struct {
	index     int
	min       Ranking
	max       Ranking
	threshold Ranking
}

func resolveAccessor[T any](a Accessor[T], index int, defaultThreshold Ranking) accessorAttributes {
	attrs := accessorAttributes{
		index:     index,
		min:       NoMatch,
		max:       CaseSensitiveEqual,
		threshold: defaultThreshold,
	}
	if a.MinRanking != nil {
		attrs.min = *a.MinRanking
	}
	if a.MaxRanking != nil {
		attrs.max = *a.MaxRanking
	}
	if a.Threshold != nil {
		attrs.threshold = *a.Threshold
	}
	return attrs
}

// candidate pairs one extracted string with its accessor's resolved
// attributes.
type candidate struct {
	value string
	attrs accessorAttributes
}

// extract flattens all accessor outputs in accessor order, then value
// order. The ordering is load-bearing: best-match selection keeps the
// earlier candidate on rank ties.
func extract[T any](item T, accessors []Accessor[T], defaultThreshold Ranking) []candidate {
	candidates := make([]candidate, 0, len(accessors))
	for i, a := range accessors {
		if a.Get == nil {
			continue
		}
		attrs := resolveAccessor(a, i, defaultThreshold)
		for _, value := range a.Get(item) {
			candidates = append(candidates, candidate{value: value, attrs: attrs})
		}
	}
	return candidates
}

// RankingPtr returns a pointer to r, for populating the optional Accessor
// fields inline.
func RankingPtr(r Ranking) *Ranking {
	return &r
}
