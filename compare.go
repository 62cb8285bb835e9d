package matchrank

// Compare orders two ranking results by descending match quality: it
// returns a negative value when a sorts before b, positive when b sorts
// before a, and zero otherwise. When both results sit at the Matches tier
// the comparison is by closeness; every other pairing compares by rank
// alone. Residual ties return 0, relying on a stable sort of the
// underlying collection to preserve input order.
func Compare(a, b RankingInfo) int {
	if a.Rank == Matches && b.Rank == Matches {
		switch {
		case a.Closeness > b.Closeness:
			return -1
		case a.Closeness < b.Closeness:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a.Rank > b.Rank:
		return -1
	case a.Rank < b.Rank:
		return 1
	default:
		return 0
	}
}
