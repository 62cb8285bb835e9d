package matchrank

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRankStringsEndToEnd(t *testing.T) {
	ranked := RankStrings([]string{"Baz", "Bar", "Foo"}, "ba", DefaultConfig)

	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.Item
	}
	// Baz and Bar both rank StartsWith; the stable sort keeps their input
	// order. Foo never matches and is dropped by the default threshold.
	want := []string{"Baz", "Bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranked order = %v, want %v", got, want)
	}
}

func TestRankOrdersAcrossTiers(t *testing.T) {
	items := []string{"axpxpxlxe", "banana apple", "apple", "zebra", "APPLE"}
	ranked := RankStrings(items, "apple", DefaultConfig)

	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.Item
	}
	// Case-sensitive equal, then case-insensitive equal, then the word
	// start, then the fuzzy subsequence; zebra never matches.
	want := []string{"apple", "APPLE", "banana apple", "axpxpxlxe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranking = %v, want %v", got, want)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	items := []string{"Foo", "Bar", "Baz"}
	original := append([]string(nil), items...)

	RankStrings(items, "ba", DefaultConfig)
	if !reflect.DeepEqual(items, original) {
		t.Errorf("input mutated: %v, want %v", items, original)
	}
}

func TestRankWithAccessors(t *testing.T) {
	people := []person{
		{Name: "Fred Flintstone", Email: "fred@bedrock.example"},
		{Name: "Barney Rubble", Email: "barney@bedrock.example"},
		{Name: "Betty Rubble", Email: "betty@bedrock.example"},
	}
	accessors := []Accessor[person]{nameAccessor(), emailAccessor()}

	ranked, err := Rank(people, "fred", accessors, DefaultConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Item.Name != "Fred Flintstone" {
		t.Errorf("ranked = %+v, want only Fred Flintstone", ranked)
	}
}

func TestRankPropagatesError(t *testing.T) {
	if _, err := Rank([]int{1, 2}, "q", nil, DefaultConfig); err == nil {
		t.Fatal("expected error for non-string items without accessors")
	}
}

func TestRankConcurrentMatchesSequential(t *testing.T) {
	items := make([]string, 0, 400)
	base := []string{"apple", "application", "aptitude", "maple", "grape", "pineapple", "zebra"}
	for i := 0; i < 400; i++ {
		items = append(items, base[i%len(base)])
	}

	sequential := RankStrings(items, "apl", DefaultConfig)
	concurrent, err := RankConcurrent(context.Background(), items, "apl", nil, DefaultConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(sequential, concurrent) {
		t.Errorf("concurrent ranking diverges from sequential")
	}
}

func TestRankConcurrentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankConcurrent(ctx, []string{"a", "b", "c"}, "a", nil, DefaultConfig)
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestRankThresholdFiltering(t *testing.T) {
	items := []string{"hello", "hello world", "say hello", "hxexlxlxo"}

	cfg := Config{Threshold: StartsWith}
	ranked := RankStrings(items, "hello", cfg)
	for _, r := range ranked {
		if r.Info.Rank < StartsWith {
			t.Errorf("%q ranked %v, below the StartsWith threshold", r.Item, r.Info.Rank)
		}
	}
	if len(ranked) != 2 {
		t.Errorf("got %d results, want 2 (hello, hello world)", len(ranked))
	}
}
