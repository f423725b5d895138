package rates

import (
	"sync"

	"github.com/shopspring/decimal"
)

type cacheEntry struct {
	price decimal.Decimal
	ok    bool
}

// CachingResolver memoizes another resolver. Gaps are cached too, so a symbol
// missing from the source is looked up at most once per run.
type CachingResolver struct {
	next    Resolver
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCachingResolver wraps a resolver with an in-memory memo cache.
func NewCachingResolver(next Resolver) *CachingResolver {
	return &CachingResolver{
		next:    next,
		entries: make(map[string]cacheEntry),
	}
}

// Rate implements Resolver.
func (c *CachingResolver) Rate(symbol, date string) (decimal.Decimal, error) {
	key := symbol + "@" + date

	c.mu.RLock()
	entry, hit := c.entries[key]
	c.mu.RUnlock()
	if hit {
		if !entry.ok {
			return decimal.Decimal{}, ErrUnavailable
		}
		return entry.price, nil
	}

	price, err := c.next.Rate(symbol, date)

	c.mu.Lock()
	c.entries[key] = cacheEntry{price: price, ok: err == nil}
	c.mu.Unlock()

	if err != nil {
		return decimal.Decimal{}, err
	}
	return price, nil
}
