package matchrank

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Ranked pairs an item with the ranking details of its best candidate.
type Ranked[T any] struct {
	Item T
	Info RankingInfo
}

// Rank scores every item, drops the ones that fail their threshold, and
// stable-sorts the rest by descending match quality. Input slices are
// never mutated.
func Rank[T any](items []T, query string, accessors []Accessor[T], cfg Config) ([]Ranked[T], error) {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		info, err := RankItem(item, query, accessors, cfg)
		if err != nil {
			return nil, err
		}
		if !info.Passed {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: item, Info: info})
	}
	sortRanked(ranked)
	return ranked, nil
}

// RankStrings ranks a plain string slice.
func RankStrings(items []string, query string, cfg Config) []Ranked[string] {
	ranked, _ := Rank(items, query, nil, cfg)
	return ranked
}

// RankConcurrent is Rank for large item sets: items are scored in parallel
// across GOMAXPROCS goroutines, then filtered and stable-sorted in input
// order so the result is identical to Rank's. The context cancels
// remaining work early.
func RankConcurrent[T any](ctx context.Context, items []T, query string, accessors []Accessor[T], cfg Config) ([]Ranked[T], error) {
	infos := make([]RankingInfo, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := RankItem(items[i], query, accessors, cfg)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]Ranked[T], 0, len(items))
	for i, info := range infos {
		if !info.Passed {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: items[i], Info: info})
	}
	sortRanked(ranked)
	return ranked, nil
}

func sortRanked[T any](ranked []Ranked[T]) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i].Info, ranked[j].Info) < 0
	})
}
