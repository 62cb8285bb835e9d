// Package normalize expands query text into diacritic-insensitive pattern
// fragments and folds candidate text for diacritic-insensitive scanning.
//
// The expansion table maps each canonical form to a character class covering
// the form itself and its known diacritic variants of the same case. Case
// insensitivity stays the caller's concern (the (?i) flag): keeping the
// classes case-preserving lets the case-sensitive equality tier distinguish
// "hello" from "HELLO" while still folding "café" onto "cafe". Output is
// always a pattern fragment, never a literal comparison string.
package normalize

import (
	"strings"
	"unicode"
)

// tableEntry pairs a canonical form with the pattern matching all of its
// same-case variants. Multi-rune forms must precede single-rune forms so a
// ligature sequence like "ae" is consumed before its letters are expanded
// individually. Single-rune entries are listed lowercase; the uppercase
// side is derived at init.
type tableEntry struct {
	form  string
	class string
}

var expansionTable = []tableEntry{
	// Whitespace and multi-rune ligature forms first.
	{" ", `\s`},
	{"ae", `(?:ae|æ|ǽ|ǣ)`},
	{"AE", `(?:AE|Æ|Ǽ|Ǣ)`},
	{"oe", `(?:oe|œ)`},
	{"OE", `(?:OE|Œ)`},
	{"ss", `(?:ss|ß)`},
	{"SS", `(?:SS|ẞ)`},
	// Single letters, lowercase variants.
	{"a", `[aàáâãäåāăąǎ]`},
	{"c", `[cçćĉċč]`},
	{"d", `[dďđ]`},
	{"e", `[eèéêëēĕėęě]`},
	{"g", `[gĝğġģ]`},
	{"h", `[hĥħ]`},
	{"i", `[iìíîïĩīĭįı]`},
	{"j", `[jĵ]`},
	{"k", `[kķ]`},
	{"l", `[lĺļľł]`},
	{"n", `[nñńņň]`},
	{"o", `[oòóôõöøōŏő]`},
	{"r", `[rŕŗř]`},
	{"s", `[sśŝşš]`},
	{"t", `[tţťŧ]`},
	{"u", `[uùúûüũūŭůűų]`},
	{"w", `[wŵ]`},
	{"y", `[yýÿŷ]`},
	{"z", `[zźżž]`},
}

// Lookup structures derived from the expansion table, built once at init.
// Every member of a class maps to that class, so a query spelled with a
// variant ("café") expands the same way as one spelled with the canonical
// form ("cafe").
var (
	multiForms  map[string]string // exact multi-rune form -> class
	singleForms map[rune]string   // any single class member -> its class
	foldTable   map[rune]string   // variant rune -> canonical folded form
)

func init() {
	multiForms = make(map[string]string)
	singleForms = make(map[rune]string)
	foldTable = make(map[rune]string)

	for _, e := range expansionTable {
		formRunes := []rune(e.form)
		if len(formRunes) > 1 {
			multiForms[e.form] = e.class
			// Single-rune ligature variants expand to the same class and
			// fold to the canonical sequence of the same case.
			for _, branch := range splitAlternation(e.class) {
				if br := []rune(branch); len(br) == 1 {
					singleForms[br[0]] = e.class
					foldTable[br[0]] = e.form
				}
			}
			continue
		}

		base := formRunes[0]
		if base == ' ' {
			singleForms[base] = e.class
			continue
		}

		upper := unicode.ToUpper(base)
		upClass := upperClass(e.class)

		for _, variant := range strings.TrimSuffix(strings.TrimPrefix(e.class, "["), "]") {
			singleForms[variant] = e.class
			if variant != base {
				foldTable[variant] = e.form
			}
			// ToUpper can collide with the plain uppercase letter (ı -> I);
			// never fold or remap the plain letter itself.
			uv := unicode.ToUpper(variant)
			if uv == variant || uv == upper {
				continue
			}
			singleForms[uv] = upClass
			foldTable[uv] = string(upper)
		}
		singleForms[upper] = upClass
	}
}

// upperClass uppercases every rune of a [...] class body.
func upperClass(class string) string {
	return strings.Map(unicode.ToUpper, class)
}

// splitAlternation extracts the branches of a (?:a|b|c) group.
func splitAlternation(class string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(class, "(?:"), ")")
	return strings.Split(inner, "|")
}

// ExpandPattern rewrites an already metacharacter-escaped query into a
// pattern fragment where every character with known diacritic variants
// matches itself and its same-case variants, and a space matches any
// whitespace. The scan is a single left-to-right pass; at each position the
// first matching table form wins, multi-rune forms before single runes.
// Backslash escape sequences produced by the caller's escaping pass are
// copied through untouched.
func ExpandPattern(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped) * 2)

	runes := []rune(escaped)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			b.WriteRune(r)
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		if i+1 < len(runes) {
			if class, ok := multiForms[string(runes[i:i+2])]; ok {
				b.WriteString(class)
				i++
				continue
			}
		}
		if class, ok := singleForms[r]; ok {
			b.WriteString(class)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExpandRune expands a single query rune into its variant class, or returns
// the empty string when the rune has no known variants.
func ExpandRune(r rune) string {
	if class, ok := singleForms[r]; ok {
		return class
	}
	return ""
}

// Fold maps every diacritic or ligature rune in s to its canonical form of
// the same case, so folded strings compare diacritic-insensitively: "café"
// folds to "cafe", "Æon" to "AEon". Fold never changes case; callers doing
// case-insensitive work lowercase the folded result themselves.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := foldTable[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
