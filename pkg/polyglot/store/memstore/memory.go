package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	langs   map[string]map[string]string
	journal []store.Change
	ids     *store.IDSource
	now     func() time.Time
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		langs: make(map[string]map[string]string),
		ids:   store.NewIDSource(),
		now:   time.Now,
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Lookup returns the value of key in lang.
func (s *Store) Lookup(ctx context.Context, lang, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.langs[lang][key]
	return val, ok, nil
}

// Put inserts or replaces a value and journals the change.
func (s *Store) Put(ctx context.Context, lang, key, value string) error {
	if err := store.ValidateEntry(lang, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.langs[lang]
	if !ok {
		entries = make(map[string]string)
		s.langs[lang] = entries
	}
	entries[key] = value
	s.record(lang, key, store.OpPut, value)
	return nil
}

// Delete removes a value. Deleting a missing key is not an error and is
// not journaled.
func (s *Store) Delete(ctx context.Context, lang, key string) error {
	if err := store.ValidateEntry(lang, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.langs[lang]
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	if len(entries) == 0 {
		delete(s.langs, lang)
	}
	s.record(lang, key, store.OpDelete, "")
	return nil
}

// Languages returns the languages holding entries, sorted.
func (s *Store) Languages(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.langs))
	for lang := range s.langs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// Entries returns a copy of lang's entries sorted by key.
func (s *Store) Entries(ctx context.Context, lang string) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.langs[lang]
	out := make([]store.Entry, 0, len(entries))
	for k, v := range entries {
		out = append(out, store.Entry{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// Changes returns journal records after afterID.
func (s *Store) Changes(ctx context.Context, afterID string, limit int) ([]store.Change, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	start := sort.Search(len(s.journal), func(i int) bool {
		return s.journal[i].ID > afterID
	})
	end := start + limit
	if end > len(s.journal) {
		end = len(s.journal)
	}

	out := make([]store.Change, end-start)
	copy(out, s.journal[start:end])
	return out, nil
}

// record must be called with s.mu held for writing.
func (s *Store) record(lang, key string, op store.Op, value string) {
	at := s.now()
	s.journal = append(s.journal, store.Change{
		ID:    s.ids.Next(at),
		Lang:  lang,
		Key:   key,
		Op:    op,
		Value: value,
		At:    at,
	})
}
