package matchrank

// Config controls scoring and ranking behavior. The zero value has a
// NoMatch threshold, which passes everything; start from DefaultConfig for
// the usual "fuzzy matches and better" cutoff.
type Config struct {
	// Threshold is the minimum Ranking a candidate must reach to pass.
	// Accessors may override it per field.
	Threshold Ranking

	// KeepDiacritics disables diacritic folding, so "cafe" no longer
	// matches "café".
	KeepDiacritics bool
}

// DefaultConfig requires at least a fuzzy subsequence match.
var DefaultConfig = Config{Threshold: Matches}
