package pattern

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// defaultCacheSize bounds the process-wide compiled-query cache. Query
// churn beyond this evicts least-recently-used entries; correctness never
// depends on a hit.
const defaultCacheSize = 256

var globalCache = newQueryCache(defaultCacheSize)

// Compile returns the compiled form of a query, reusing a cached entry when
// the same query and diacritic mode were compiled recently. The returned
// Query is immutable, so sharing it across callers leaks no state.
func Compile(query string, keepDiacritics bool) *Query {
	key := cacheKey(query, keepDiacritics)
	if q, ok := globalCache.get(key, query, keepDiacritics); ok {
		return q
	}
	q := compile(query, keepDiacritics)
	globalCache.set(key, q)
	return q
}

// cacheKey hashes the query plus the diacritic flag. xxhash is a fast
// non-cryptographic hash; get verifies the stored query to rule out the
// (vanishingly rare) collision.
func cacheKey(query string, keepDiacritics bool) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(query)
	if keepDiacritics {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// queryCache is a thread-safe LRU keyed by query hash.
type queryCache struct {
	maxSize int
	mu      sync.Mutex
	items   map[uint64]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key   uint64
	query *Query
}

func newQueryCache(maxSize int) *queryCache {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}
	return &queryCache{
		maxSize: maxSize,
		items:   make(map[uint64]*list.Element),
		order:   list.New(),
	}
}

// get retrieves a compiled query and marks it recently used. The raw query
// and flag are re-checked so a hash collision degrades to a miss.
func (c *queryCache) get(key uint64, query string, keepDiacritics bool) (*Query, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if entry.query.Raw != query || entry.query.KeepDiacritics != keepDiacritics {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.query, true
}

// set stores a compiled query, evicting the least-recently-used entry when
// over capacity.
func (c *queryCache) set(key uint64, q *Query) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).query = q
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, query: q})
	c.items[key] = elem

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

// size reports the current entry count; used by tests.
func (c *queryCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
