// Package matchrank ranks arbitrary items against a query string and orders
// them by match quality, supporting nested and multi-field candidate
// extraction from structured items.
//
// # Ranking Cascade
//
// Each candidate string is scored by a cascade of strategies evaluated in
// strict priority order; the first that matches determines the tier:
//
//  1. Case-sensitive equality
//  2. Case-insensitive equality
//  3. Prefix match
//  4. Word-prefix match (query at the start of an interior word)
//  5. Substring containment
//  6. Acronym match (query letters lead consecutive words)
//  7. Fuzzy subsequence match (all query characters appear in order)
//
// Tiers 1-6 are implemented with RE2 regular expressions, so scoring stays
// linear in the candidate length even for adversarial inputs. The query is
// metacharacter-escaped before being embedded in a pattern, and unless
// Config.KeepDiacritics is set it is expanded so that "cafe" matches "café"
// and vice versa.
//
// # Items and Accessors
//
// Plain string slices rank directly:
//
//	ranked := matchrank.RankStrings([]string{"Baz", "Bar", "Foo"}, "ba", matchrank.DefaultConfig)
//
// Structured items supply accessors deriving one or more candidate strings,
// each with optional per-accessor rank bounds and threshold:
//
//	type contact struct{ Name, Email string }
//	accessors := []matchrank.Accessor[contact]{
//		matchrank.AccessorFunc(func(c contact) string { return c.Name }),
//		matchrank.AccessorFunc(func(c contact) string { return c.Email }),
//	}
//	ranked, err := matchrank.Rank(contacts, "bob", accessors, matchrank.DefaultConfig)
//
// The best-scoring candidate across all accessors wins; ties keep the
// earlier accessor, and the final sort is stable so equal-ranked items
// preserve their input order.
//
// # Concurrency
//
// Every exported function is a pure function of its inputs and safe for
// concurrent use. RankConcurrent scores large item sets in parallel.
package matchrank
