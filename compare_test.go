package matchrank

import "testing"

func infoAt(rank Ranking) RankingInfo {
	return RankingInfo{MatchResult: MatchResult{Rank: rank}}
}

func fuzzyInfo(closeness float64) RankingInfo {
	return RankingInfo{MatchResult: MatchResult{Rank: Matches, Closeness: closeness}}
}

func TestCompareRankOrdering(t *testing.T) {
	// Every higher tier must sort before every lower tier.
	tiers := []Ranking{
		NoMatch, Matches, Acronym, Contains,
		WordStartsWith, StartsWith, Equal, CaseSensitiveEqual,
	}
	for i, lower := range tiers {
		for _, higher := range tiers[i+1:] {
			if got := Compare(infoAt(higher), infoAt(lower)); got >= 0 {
				t.Errorf("Compare(%v, %v) = %d, want negative", higher, lower, got)
			}
			if got := Compare(infoAt(lower), infoAt(higher)); got <= 0 {
				t.Errorf("Compare(%v, %v) = %d, want positive", lower, higher, got)
			}
		}
	}
}

func TestCompareAntisymmetry(t *testing.T) {
	pairs := []struct{ a, b RankingInfo }{
		{infoAt(StartsWith), infoAt(Contains)},
		{fuzzyInfo(0.5), fuzzyInfo(0.25)},
		{infoAt(Equal), fuzzyInfo(0.9)},
	}
	for _, p := range pairs {
		if Compare(p.a, p.b) != -Compare(p.b, p.a) {
			t.Errorf("Compare not antisymmetric for %+v vs %+v", p.a, p.b)
		}
	}
}

func TestCompareSelfIsZero(t *testing.T) {
	for _, info := range []RankingInfo{infoAt(NoMatch), infoAt(Equal), fuzzyInfo(0.5)} {
		if got := Compare(info, info); got != 0 {
			t.Errorf("Compare(a, a) = %d, want 0", got)
		}
	}
}

func TestCompareClosenessOnlyWithinMatchesTier(t *testing.T) {
	// Higher closeness sorts first inside the Matches tier.
	if got := Compare(fuzzyInfo(0.5), fuzzyInfo(0.1)); got >= 0 {
		t.Errorf("Compare(tight, loose) = %d, want negative", got)
	}

	// A Contains result outranks even the tightest fuzzy hit: closeness
	// never crosses tiers.
	contains := infoAt(Contains)
	contains.Closeness = 0.0
	if got := Compare(contains, fuzzyInfo(1.0)); got >= 0 {
		t.Errorf("Compare(Contains, fuzzy) = %d, want negative", got)
	}
}
