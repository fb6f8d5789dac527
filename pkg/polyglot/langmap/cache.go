package langmap

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

// DefaultCapacity is the number of slots of a cache created with a
// non-positive capacity.
const DefaultCapacity = 17

// LookupFunc adapts a function to store.Lookuper.
type LookupFunc func(ctx context.Context, key string) (string, bool, error)

// Lookup implements store.Lookuper.
func (f LookupFunc) Lookup(ctx context.Context, key string) (string, bool, error) {
	return f(ctx, key)
}

type slot struct {
	used  bool
	key   string
	value string
	ok    bool
}

// Stats counts cache hits and misses since creation.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache is a fixed-size ring buffer in front of a store.Lookuper.
//
// Slots are overwritten oldest-written first, regardless of use. A key may
// occupy two slots until the older one is overwritten; the scan returns the
// first one found. Absent results are cached like values. Source errors are
// returned and not cached.
//
// The lock is shared with the owner of the source so that source mutations
// can exclude cache fills.
type Cache struct {
	mu     *sync.RWMutex
	src    store.Lookuper
	slots  []slot
	cursor int

	hint   atomic.Int64
	gen    atomic.Uint64
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache of capacity slots reading through src. A nil mu
// gives the cache a private lock.
func NewCache(mu *sync.RWMutex, src store.Lookuper, capacity int) *Cache {
	if mu == nil {
		mu = new(sync.RWMutex)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		mu:    mu,
		src:   src,
		slots: make([]slot, capacity),
	}
}

// Get returns the value for key, filling the cache from the source on a
// miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	key = NormalizeKey(key)
	if key == "" {
		return "", false, nil
	}

	if val, ok, found := c.probe(key, true); found {
		c.hits.Add(1)
		return val, ok, nil
	}
	c.misses.Add(1)

	gen := c.gen.Load()
	val, ok, err := c.src.Lookup(ctx, key)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	// A reset while the source was queried makes this result stale.
	if c.gen.Load() == gen {
		c.slots[c.cursor] = slot{used: true, key: key, value: val, ok: ok}
		c.cursor = (c.cursor + 1) % len(c.slots)
	}
	c.mu.Unlock()

	return val, ok, nil
}

// Peek reports whether key is cached and, if so, its cached result. It
// never queries the source.
func (c *Cache) Peek(key string) (value string, ok bool, cached bool) {
	key = NormalizeKey(key)
	if key == "" {
		return "", false, false
	}
	return c.probe(key, false)
}

func (c *Cache) probe(key string, remember bool) (string, bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.slots)
	start := int(c.hint.Load()) % n
	for i := 0; i < n; i++ {
		j := (start + i) % n
		s := &c.slots[j]
		if s.used && s.key == key {
			if remember {
				c.hint.Store(int64(j))
			}
			return s.value, s.ok, true
		}
	}
	return "", false, false
}

// Reset empties all slots and rewinds the write cursor.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
}

// resetLocked must be called with c.mu held for writing.
func (c *Cache) resetLocked() {
	clear(c.slots)
	c.cursor = 0
	c.hint.Store(0)
	c.gen.Add(1)
}

// Len returns the number of occupied slots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for i := range c.slots {
		if c.slots[i].used {
			n++
		}
	}
	return n
}

// Capacity returns the number of slots.
func (c *Cache) Capacity() int { return len(c.slots) }

// Stats returns the hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// NormalizeKey trims surrounding whitespace and one pair of enclosing
// double quotes.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && key[0] == '"' && key[len(key)-1] == '"' {
		key = strings.TrimSpace(key[1 : len(key)-1])
	}
	return key
}
