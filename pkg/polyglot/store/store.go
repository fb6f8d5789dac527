package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

// Store is the mutable, language-keyed translation table.
// Implementations must be safe for concurrent use.
type Store interface {
	Close() error

	// Lookup returns the value for key in lang; ok is false when absent.
	Lookup(ctx context.Context, lang, key string) (value string, ok bool, err error)
	Put(ctx context.Context, lang, key, value string) error
	Delete(ctx context.Context, lang, key string) error

	// Languages returns the languages that hold at least one entry, sorted.
	Languages(ctx context.Context) ([]string, error)
	// Entries returns all entries of lang sorted by key.
	Entries(ctx context.Context, lang string) ([]Entry, error)

	// Changes returns journal records with an ID greater than afterID,
	// oldest first. An empty afterID starts at the beginning.
	Changes(ctx context.Context, afterID string, limit int) ([]Change, error)
}

// Lookuper is a single-language view of a Store.
type Lookuper interface {
	Lookup(ctx context.Context, key string) (value string, ok bool, err error)
}

// Entry is one key/value pair of a language.
type Entry struct {
	Key   string
	Value string
}

// Op is the kind of a journaled mutation.
type Op string

const (
	OpPut    Op = "put"
	OpDelete Op = "delete"
)

// Change records one mutation. IDs are ULIDs and sort by creation.
type Change struct {
	ID    string
	Lang  string
	Key   string
	Op    Op
	Value string
	At    time.Time
}

// DefaultFallbacks is the substitution order for keys missing in the
// requested language.
var DefaultFallbacks = []string{"en", "de"}

// View looks keys up in Lang and, when absent, in each of Fallbacks in
// order. A nil Fallbacks means DefaultFallbacks; use an empty, non-nil
// slice for no fallback.
type View struct {
	Store     Store
	Lang      string
	Fallbacks []string
}

// Lookup implements Lookuper.
func (v View) Lookup(ctx context.Context, key string) (string, bool, error) {
	if v.Store == nil {
		return "", false, internalerr.ErrStoreUnavailable
	}
	fallbacks := v.Fallbacks
	if fallbacks == nil {
		fallbacks = DefaultFallbacks
	}

	tried := make(map[string]struct{}, len(fallbacks)+1)
	for _, lang := range append([]string{v.Lang}, fallbacks...) {
		if lang == "" {
			continue
		}
		if _, done := tried[lang]; done {
			continue
		}
		tried[lang] = struct{}{}

		val, ok, err := v.Store.Lookup(ctx, lang, key)
		if err != nil {
			return "", false, fmt.Errorf("lookup %s/%s: %w", lang, key, err)
		}
		if ok {
			return val, true, nil
		}
	}
	return "", false, nil
}

// ValidateEntry checks the arguments of Put and Delete.
func ValidateEntry(lang, key string) error {
	if strings.TrimSpace(lang) == "" || strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty language or key", internalerr.ErrInvalidInput)
	}
	return nil
}

// IDSource hands out monotonic ULIDs for journal records.
type IDSource struct {
	mu      sync.Mutex
	entropy io.Reader
}

// NewIDSource creates an IDSource seeded from crypto/rand.
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new ID for time t. IDs for non-decreasing times increase.
func (s *IDSource) Next(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}
