package matchrank

import (
	"errors"
	"fmt"
)

// ErrNotAString reports that RankItem was called without accessors on an
// item that is not itself a string. Coercing would silently change
// matching semantics, so the call fails instead.
var ErrNotAString = errors.New("item is not a string and no accessors were given")

// RankItem scores one item against a query and returns the best-scoring
// candidate with its provenance.
//
// With no accessors the item must itself be a string and is scored
// directly, with AccessorIndex -1. With accessors, every extracted
// candidate is scored, clamped to its accessor's bounds, and the best one
// wins: a candidate replaces the current best only when its clamped rank is
// strictly higher, or when both sit at the Matches tier and the candidate's
// closeness is strictly greater. Ties keep the earlier candidate.
func RankItem[T any](item T, query string, accessors []Accessor[T], cfg Config) (RankingInfo, error) {
	if len(accessors) == 0 {
		s, ok := any(item).(string)
		if !ok {
			return RankingInfo{}, fmt.Errorf("%w: %T", ErrNotAString, item)
		}
		return RankString(s, query, cfg), nil
	}

	best := RankingInfo{
		MatchResult:       MatchResult{Rank: NoMatch},
		AccessorIndex:     -1,
		AccessorThreshold: cfg.Threshold,
	}
	for _, cand := range extract(item, accessors, cfg.Threshold) {
		result := Score(cand.value, query, cfg)
		result.Rank = clampRank(result.Rank, cand.attrs)
		if betterThan(result, best.MatchResult) {
			best = RankingInfo{
				MatchResult:       result,
				RankedValue:       cand.value,
				AccessorIndex:     cand.attrs.index,
				AccessorThreshold: cand.attrs.threshold,
			}
		}
	}
	best.Passed = best.Rank >= best.AccessorThreshold
	return best, nil
}

// RankString scores a plain string with AccessorIndex -1.
func RankString(s, query string, cfg Config) RankingInfo {
	result := Score(s, query, cfg)
	return RankingInfo{
		MatchResult:       result,
		RankedValue:       s,
		AccessorIndex:     -1,
		AccessorThreshold: cfg.Threshold,
		Passed:            result.Rank >= cfg.Threshold,
	}
}

// clampRank applies the accessor's bounds. The minimum only rescues actual
// matches; a NoMatch is never promoted. The maximum applies
// unconditionally.
func clampRank(rank Ranking, attrs accessorAttributes) Ranking {
	if rank < attrs.min && rank >= Matches {
		return attrs.min
	}
	if rank > attrs.max {
		return attrs.max
	}
	return rank
}

// betterThan reports whether a candidate result displaces the current best.
// The comparison is strict (> not >=) so earlier accessors win ties.
func betterThan(candidate, best MatchResult) bool {
	if candidate.Rank > best.Rank {
		return true
	}
	return candidate.Rank == Matches && best.Rank == Matches &&
		candidate.Closeness > best.Closeness
}
