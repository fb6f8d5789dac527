package langmap

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

// DefaultLanguage is used when Options.Lang is empty.
const DefaultLanguage = "en"

// preloadWorkers bounds concurrent source lookups during Preload.
const preloadWorkers = 4

// Options configures a Catalog.
type Options struct {
	// Lang is the initial language; DefaultLanguage when empty.
	Lang string
	// Fallbacks is the substitution order for missing keys. Nil means
	// store.DefaultFallbacks.
	Fallbacks []string
	// Capacity is the cache size; DefaultCapacity when not positive.
	Capacity int
	Logger    *zap.Logger
}

// Catalog serves localized values of one current language from a store
// through a small ring cache.
//
// The cache and every store mutation issued through the catalog share one
// reader/writer lock. Mutations do not invalidate cached entries; call
// Refresh to drop them.
type Catalog struct {
	mu    sync.RWMutex
	st    store.Store
	view  atomic.Pointer[store.View]
	cache *Cache
	log   *zap.Logger
}

// New creates a catalog over st.
func New(st store.Store, opts Options) (*Catalog, error) {
	if st == nil {
		return nil, internalerr.ErrStoreUnavailable
	}
	lang := opts.Lang
	if lang == "" {
		lang = DefaultLanguage
	}
	lang, err := NormalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	fallbacks, err := normalizeFallbacks(opts.Fallbacks)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{st: st, log: logger}
	c.view.Store(&store.View{Store: st, Lang: lang, Fallbacks: fallbacks})
	c.cache = NewCache(&c.mu, LookupFunc(c.lookup), opts.Capacity)
	return c, nil
}

func (c *Catalog) lookup(ctx context.Context, key string) (string, bool, error) {
	return c.view.Load().Lookup(ctx, key)
}

// Language returns the current two-letter language code.
func (c *Catalog) Language() string {
	return c.view.Load().Lang
}

// Store returns the backing store.
func (c *Catalog) Store() store.Store { return c.st }

// Cache returns the catalog's cache.
func (c *Catalog) Cache() *Cache { return c.cache }

// SetLanguage switches the current language. Switching to a different
// language empties the cache.
func (c *Catalog) SetLanguage(lang string) error {
	lang, err := NormalizeLanguage(lang)
	if err != nil {
		return err
	}

	c.mu.Lock()
	old := c.view.Load()
	if old.Lang == lang {
		c.mu.Unlock()
		return nil
	}
	next := *old
	next.Lang = lang
	c.view.Store(&next)
	c.cache.resetLocked()
	c.mu.Unlock()

	c.log.Info("language switched",
		zap.String("from", old.Lang),
		zap.String("to", lang))
	return nil
}

// Value returns the value for key in the current language or a fallback.
func (c *Catalog) Value(ctx context.Context, key string) (string, bool, error) {
	return c.cache.Get(ctx, key)
}

// ValueOr returns the value for key, or def when it is absent or the
// lookup fails.
func (c *Catalog) ValueOr(ctx context.Context, key, def string) string {
	val, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("lookup failed", zap.String("key", key), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}
	return val
}

// Lookup reads key of lang straight from the store, bypassing the cache
// and fallbacks.
func (c *Catalog) Lookup(ctx context.Context, lang, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.st.Lookup(ctx, lang, NormalizeKey(key))
}

// Put stores a value. Cached results for key stay until overwritten or
// refreshed.
func (c *Catalog) Put(ctx context.Context, lang, key, value string) error {
	lang, err := NormalizeLanguage(lang)
	if err != nil {
		return err
	}
	key = NormalizeKey(key)

	c.mu.Lock()
	err = c.st.Put(ctx, lang, key, value)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", lang, key, err)
	}

	c.log.Debug("entry stored", zap.String("lang", lang), zap.String("key", key))
	return nil
}

// Delete removes a value.
func (c *Catalog) Delete(ctx context.Context, lang, key string) error {
	lang, err := NormalizeLanguage(lang)
	if err != nil {
		return err
	}
	key = NormalizeKey(key)

	c.mu.Lock()
	err = c.st.Delete(ctx, lang, key)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", lang, key, err)
	}

	c.log.Debug("entry deleted", zap.String("lang", lang), zap.String("key", key))
	return nil
}

// Refresh empties the cache.
func (c *Catalog) Refresh() {
	c.cache.Reset()
	c.log.Info("cache reset", zap.String("lang", c.Language()))
}

// Preload fetches keys into the cache concurrently. Keys beyond the cache
// capacity push out earlier ones.
func (c *Catalog) Preload(ctx context.Context, keys []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadWorkers)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			_, _, err := c.cache.Get(gctx, key)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	return nil
}

// Format looks up the pattern for key, def when absent, and fills its
// placeholders with args. See FormatMessage.
func (c *Catalog) Format(ctx context.Context, key, def string, args ...any) string {
	return FormatMessage(c.ValueOr(ctx, key, def), args...)
}

// NormalizeLanguage maps a language tag such as "DE" or "de_AT" to
// its lowercase two-letter base language.
func NormalizeLanguage(lang string) (string, error) {
	s := strings.ReplaceAll(NormalizeKey(lang), "_", "-")
	if s == "" {
		return "", fmt.Errorf("%w: empty language", internalerr.ErrInvalidInput)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: language %q: %v", internalerr.ErrInvalidInput, lang, err)
	}
	base, conf := tag.Base()
	code := base.String()
	if conf == language.No || len(code) != 2 {
		return "", fmt.Errorf("%w: language %q has no two-letter code", internalerr.ErrInvalidInput, lang)
	}
	return code, nil
}

func normalizeFallbacks(langs []string) ([]string, error) {
	if langs == nil {
		return nil, nil
	}
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		code, err := NormalizeLanguage(l)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		out = append(out, code)
	}
	return out, nil
}
