package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := OpenSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteIntegrationBasic tests basic CRUD operations
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	if err := st.Put(ctx, "de", "jan", "Januar"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := st.Put(ctx, "en", "jan", "January"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	val, ok, err := st.Lookup(ctx, "de", "jan")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok || val != "Januar" {
		t.Errorf("Lookup(de, jan) = %q, %v, want Januar", val, ok)
	}

	// Replace
	if err := st.Put(ctx, "de", "jan", "Jänner"); err != nil {
		t.Fatalf("Put (replace): %v", err)
	}
	val, _, _ = st.Lookup(ctx, "de", "jan")
	if val != "Jänner" {
		t.Errorf("Lookup after replace = %q, want Jänner", val)
	}

	if _, ok, err := st.Lookup(ctx, "fr", "jan"); err != nil || ok {
		t.Errorf("Lookup(fr, jan) = %v, %v, want absent without error", ok, err)
	}

	langs, err := st.Languages(ctx)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Errorf("Languages() = %v, want [de en]", langs)
	}
}

func TestSQLiteDelete(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	_ = st.Put(ctx, "de", "yes", "ja")
	if err := st.Delete(ctx, "de", "yes"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := st.Lookup(ctx, "de", "yes"); ok {
		t.Error("deleted key still present")
	}
	if err := st.Delete(ctx, "de", "yes"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}

	changes, err := st.Changes(ctx, "", 10)
	if err != nil {
		t.Fatalf("Changes: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("Changes() = %d records, want 2 (put, delete)", len(changes))
	}
	if changes[0].Op != store.OpPut || changes[1].Op != store.OpDelete {
		t.Errorf("journal ops = %s, %s, want put, delete", changes[0].Op, changes[1].Op)
	}
	if changes[0].At.IsZero() {
		t.Error("journal record has no timestamp")
	}
}

func TestSQLiteRejectsEmptyKey(t *testing.T) {
	st := openTemp(t)
	err := st.Put(context.Background(), "de", "", "x")
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Put with empty key error = %v, want ErrInvalidInput", err)
	}
}

func TestSQLiteEntriesAndChangesPaging(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	for i := 0; i < 5; i++ {
		if err := st.Put(ctx, "en", fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	entries, err := st.Entries(ctx, "en")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 5 || entries[0].Key != "k0" || entries[4].Key != "k4" {
		t.Errorf("Entries() = %v, want k0..k4 in order", entries)
	}

	first, _ := st.Changes(ctx, "", 2)
	if len(first) != 2 {
		t.Fatalf("Changes(limit 2) = %d records", len(first))
	}
	rest, _ := st.Changes(ctx, first[1].ID, 10)
	if len(rest) != 3 {
		t.Fatalf("Changes(after second) = %d records, want 3", len(rest))
	}
	if rest[0].Key != "k2" {
		t.Errorf("first remaining change = %q, want k2", rest[0].Key)
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	_ = st.Put(ctx, "it", "yes", "sì")
	st.Close()

	st, err = OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	val, ok, _ := st.Lookup(ctx, "it", "yes")
	if !ok || val != "sì" {
		t.Errorf("Lookup after reopen = %q, %v, want sì", val, ok)
	}
}

func TestSQLiteConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if err := st.Put(ctx, "en", fmt.Sprintf("w%d-%d", w, i), "x"); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Put: %v", err)
	}

	entries, _ := st.Entries(ctx, "en")
	if len(entries) != 40 {
		t.Errorf("Entries() = %d, want 40", len(entries))
	}
}
