package pattern

import (
	"fmt"
	"testing"
)

func TestCompileReusesCachedQuery(t *testing.T) {
	a := Compile("cached query", false)
	b := Compile("cached query", false)
	if a != b {
		t.Error("identical queries should share one compiled instance")
	}

	c := Compile("cached query", true)
	if a == c {
		t.Error("diacritic mode must key the cache separately")
	}
}

func TestQueryCacheEviction(t *testing.T) {
	cache := newQueryCache(2)

	for i := 0; i < 3; i++ {
		query := fmt.Sprintf("q%d", i)
		cache.set(cacheKey(query, false), compile(query, false))
	}

	if got := cache.size(); got != 2 {
		t.Errorf("size = %d, want 2 after eviction", got)
	}
	if _, ok := cache.get(cacheKey("q0", false), "q0", false); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := cache.get(cacheKey("q2", false), "q2", false); !ok {
		t.Error("newest entry should survive")
	}
}

func TestQueryCacheRecencyOnGet(t *testing.T) {
	cache := newQueryCache(2)
	cache.set(cacheKey("a", false), compile("a", false))
	cache.set(cacheKey("b", false), compile("b", false))

	// Touch "a" so "b" becomes the eviction victim.
	if _, ok := cache.get(cacheKey("a", false), "a", false); !ok {
		t.Fatal("expected a to be cached")
	}
	cache.set(cacheKey("c", false), compile("c", false))

	if _, ok := cache.get(cacheKey("a", false), "a", false); !ok {
		t.Error("recently used entry should survive")
	}
	if _, ok := cache.get(cacheKey("b", false), "b", false); ok {
		t.Error("least recently used entry should be evicted")
	}
}

func TestQueryCacheCollisionDegradesToMiss(t *testing.T) {
	cache := newQueryCache(4)
	key := cacheKey("real", false)
	cache.set(key, compile("real", false))

	if _, ok := cache.get(key, "imposter", false); ok {
		t.Error("a mismatched query under the same key must miss")
	}
}
