package pattern

import "testing"

func TestCompileBuildsAllPatterns(t *testing.T) {
	q := compile("wor", false)

	if !q.EqualSensitive.MatchString("wor") {
		t.Error("EqualSensitive should match the query itself")
	}
	if q.EqualSensitive.MatchString("world") {
		t.Error("EqualSensitive must anchor start to end")
	}
	if !q.EqualFold.MatchString("WOR") {
		t.Error("EqualFold should be case-insensitive")
	}
	if !q.Prefix.MatchString("world") {
		t.Error("Prefix should match at the start")
	}
	if q.Prefix.MatchString("sword") {
		t.Error("Prefix must anchor at the start")
	}
	if loc := q.WordPrefix.FindStringIndex("hello world"); loc == nil || loc[0] != 5 {
		t.Errorf("WordPrefix span = %v, want to start at the whitespace", loc)
	}
	if loc := q.Contains.FindStringIndex("sword"); loc == nil || loc[0] != 1 {
		t.Errorf("Contains span = %v, want [1 4]", loc)
	}
}

func TestCompileAcronymCaptures(t *testing.T) {
	q := compile("ff", false)

	locs := q.Acronym.FindStringSubmatchIndex("Fred Flintstone")
	if locs == nil {
		t.Fatal("acronym should match consecutive word leads")
	}
	if locs[2] != 0 || locs[4] != 5 {
		t.Errorf("capture starts = %d, %d, want 0, 5", locs[2], locs[4])
	}

	if q.Acronym.MatchString("Franklin") != false {
		t.Error("acronym must not match letters inside one word")
	}
}

func TestCompileEscapesMetacharacters(t *testing.T) {
	q := compile("a.c", false)
	if q.Contains.MatchString("abc") {
		t.Error("dot in the query must be literal")
	}
	if !q.Contains.MatchString("xa.cx") {
		t.Error("literal a.c should still match")
	}
}

func TestCompileFoldedQuery(t *testing.T) {
	q := compile("CaFé", false)
	if got := string(q.Folded); got != "cafe" {
		t.Errorf("Folded = %q, want cafe", got)
	}

	kept := compile("CaFé", true)
	if got := string(kept.Folded); got != "café" {
		t.Errorf("keep-diacritics Folded = %q, want café", got)
	}
}

func TestCompileEmptyQuery(t *testing.T) {
	q := compile("", false)
	if q.Acronym != nil {
		t.Error("empty query should have no acronym pattern")
	}
	if !q.EqualSensitive.MatchString("") {
		t.Error("empty query should equal the empty string")
	}
}
