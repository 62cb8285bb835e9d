package matchrank

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestFloor is the minimum Jaro-Winkler similarity a candidate needs to
// be offered as a suggestion.
const suggestFloor = 0.5

// Suggestion is a near-miss candidate with its similarity to the query.
type Suggestion struct {
	Value      string
	Similarity float64
}

// Suggest returns up to limit candidates resembling the query, ordered by
// descending Jaro-Winkler similarity. Intended for "did you mean" output
// when nothing cleared the ranking threshold; it deliberately uses edit
// similarity rather than the subsequence cascade, so transposed or
// misspelled queries still surface neighbors. A non-positive limit means
// no limit.
func Suggest(candidates []string, query string, limit int) []Suggestion {
	queryLower := strings.ToLower(query)

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		sim, err := edlib.StringsSimilarity(strings.ToLower(c), queryLower, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if float64(sim) < suggestFloor {
			continue
		}
		suggestions = append(suggestions, Suggestion{Value: c, Similarity: float64(sim)})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
