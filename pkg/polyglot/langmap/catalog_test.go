package langmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/store"
	"github.com/cognicore/polyglot/pkg/polyglot/store/memstore"
)

func newSeededCatalog(t *testing.T, lang string) *Catalog {
	t.Helper()
	st := memstore.New()
	require.NoError(t, SeedStandard(context.Background(), st))
	c, err := New(st, Options{Lang: lang})
	require.NoError(t, err)
	return c
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(nil, Options{})
	require.ErrorIs(t, err, internalerr.ErrStoreUnavailable)

	_, err = New(memstore.New(), Options{Lang: "not a language"})
	require.ErrorIs(t, err, internalerr.ErrInvalidInput)
}

func TestCatalogDefaults(t *testing.T) {
	c, err := New(memstore.New(), Options{})
	require.NoError(t, err)
	require.Equal(t, DefaultLanguage, c.Language())
	require.Equal(t, DefaultCapacity, c.Cache().Capacity())
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"de", "de", false},
		{"DE", "de", false},
		{" en ", "en", false},
		{"de_AT", "de", false},
		{"en-US", "en", false},
		{`"fr"`, "fr", false},
		{"", "", true},
		{"1x", "", true},
		{"not a language", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeLanguage(tt.in)
		if tt.wantErr {
			require.Error(t, err, "NormalizeLanguage(%q)", tt.in)
			require.True(t, errors.Is(err, internalerr.ErrInvalidInput))
			continue
		}
		require.NoError(t, err, "NormalizeLanguage(%q)", tt.in)
		require.Equal(t, tt.want, got, "NormalizeLanguage(%q)", tt.in)
	}
}

func TestValueWithFallback(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "fr")

	require.Equal(t, "oui", c.ValueOr(ctx, "yes", "?"))
	// Not in the French catalog; served from English.
	require.Equal(t, "parameter", c.ValueOr(ctx, "para", "?"))
	require.Equal(t, "?", c.ValueOr(ctx, "nope", "?"))

	val, ok, err := c.Value(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, val)
}

func TestSetLanguageResetsCache(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.InfoLevel)
	st := memstore.New()
	require.NoError(t, SeedStandard(ctx, st))
	c, err := New(st, Options{Lang: "de", Logger: zap.New(core)})
	require.NoError(t, err)

	require.Equal(t, "Montag", c.ValueOr(ctx, "mon", ""))
	require.Equal(t, 1, c.Cache().Len())

	require.NoError(t, c.SetLanguage("EN"))
	require.Equal(t, "en", c.Language())
	require.Equal(t, 0, c.Cache().Len())
	require.Equal(t, "Monday", c.ValueOr(ctx, "mon", ""))
	require.Equal(t, 1, logs.FilterMessage("language switched").Len())

	// Same language keeps the cache.
	require.NoError(t, c.SetLanguage("en-GB"))
	require.Equal(t, 1, c.Cache().Len())
	require.Equal(t, 1, logs.FilterMessage("language switched").Len())

	require.ErrorIs(t, c.SetLanguage("?"), internalerr.ErrInvalidInput)
	require.Equal(t, "en", c.Language())
}

func TestPutIsVisibleAfterRefresh(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "de")

	require.Equal(t, "ja", c.ValueOr(ctx, "yes", ""))
	require.NoError(t, c.Put(ctx, "DE", "yes", "jawohl"))
	require.Equal(t, "ja", c.ValueOr(ctx, "yes", ""), "cache is not invalidated by Put")

	c.Refresh()
	require.Equal(t, "jawohl", c.ValueOr(ctx, "yes", ""))

	require.NoError(t, c.Delete(ctx, "de", "yes"))
	c.Refresh()
	require.Equal(t, "yes", c.ValueOr(ctx, "yes", ""), "falls back to English after delete")

	require.ErrorIs(t, c.Put(ctx, "de", " ", "x"), internalerr.ErrInvalidInput)
	require.ErrorIs(t, c.Put(ctx, "", "k", "x"), internalerr.ErrInvalidInput)
}

func TestPreload(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "de")

	keys := []string{"jan", "feb", "mar", "apr", "may"}
	require.NoError(t, c.Preload(ctx, keys))
	require.Equal(t, len(keys), c.Cache().Len())
	for _, k := range keys {
		_, ok, cached := c.Cache().Peek(k)
		require.True(t, cached, "key %q not preloaded", k)
		require.True(t, ok)
	}
}

type failingStore struct {
	store.Store
}

func (failingStore) Lookup(context.Context, string, string) (string, bool, error) {
	return "", false, internalerr.ErrStoreUnavailable
}

func TestPreloadReportsErrors(t *testing.T) {
	c, err := New(failingStore{memstore.New()}, Options{Lang: "de"})
	require.NoError(t, err)

	err = c.Preload(context.Background(), []string{"jan", "feb"})
	require.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
	require.Equal(t, "fallback", c.ValueOr(context.Background(), "jan", "fallback"))
}

func TestStandardAccessorsGerman(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "de")

	require.Equal(t, "März", c.Month(ctx, 3))
	require.Equal(t, "Dez", c.ShortMonth(ctx, 12))
	require.Empty(t, c.Month(ctx, 0))
	require.Empty(t, c.ShortMonth(ctx, 13))

	require.Equal(t, "Sonntag", c.Weekday(ctx, 0))
	require.Equal(t, "Sonntag", c.Weekday(ctx, 7))
	require.Equal(t, "Freitag", c.Weekday(ctx, 5))
	require.Equal(t, "Sa", c.ShortWeekday(ctx, 6))
	require.Empty(t, c.Weekday(ctx, 8))
	require.Empty(t, c.ShortWeekday(ctx, -1))

	require.Equal(t, "Französisch", c.LanguageName(ctx, "FR", false))
	require.Equal(t, "engl.", c.LanguageName(ctx, "en", true))
	require.Empty(t, c.LanguageName(ctx, "xx", false))
	require.Empty(t, c.LanguageName(ctx, "deu", false))

	require.Equal(t, "Sommerzeit", c.SummerTime(ctx, true, false))
	require.Equal(t, "NZ", c.SummerTime(ctx, false, true))
}

func TestTimeZone(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "de")

	tests := []struct {
		zone   string
		summer bool
		abbrev bool
		want   string
	}{
		{"CET", false, true, "MEZ"},
		{"cet", true, true, "MESZ"},
		{"MEZ", true, false, "Mitteleuropäische Sommerzeit"},
		{"WET", false, true, "WEZ"},
		{"wet", true, true, "WESZ"},
		{"EET", false, true, "OEZ"},
		{"eet", true, true, "OESZ"},
		{"GMT", true, true, "GMT"},
		{"utc", false, true, "UTC"},
		{"UTC", true, false, "Koordinierte Weltzeit"},
		{"PST", false, true, "MEZ"},
		{"", true, true, "MESZ"},
	}
	for _, tt := range tests {
		got := c.TimeZone(ctx, tt.zone, tt.summer, tt.abbrev)
		require.Equal(t, tt.want, got, "TimeZone(%q, %v, %v)", tt.zone, tt.summer, tt.abbrev)
	}

	// French catalog has no WET names.
	require.NoError(t, c.SetLanguage("fr"))
	require.Equal(t, "Western European Time", c.TimeZone(ctx, "WET", false, false))
	require.Equal(t, "HNEC", c.TimeZone(ctx, "CET", false, true))
}

func TestCatalogFormat(t *testing.T) {
	ctx := context.Background()
	c := newSeededCatalog(t, "de")

	require.Equal(t, "1 Datei gelöscht", c.Format(ctx, "deleted", "", 1))
	require.Equal(t, "3 Dateien gelöscht", c.Format(ctx, "deleted", "", 3))
	require.Equal(t, "Angabe für Farbe fehlt ", c.Format(ctx, "missval", "", "Farbe"))
	require.Equal(t, "fallback 2", c.Format(ctx, "nokey", "fallback {0}", 2))

	require.NoError(t, c.SetLanguage("en"))
	require.Equal(t, "0 files deleted", c.Format(ctx, "deleted", "", 0))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "on 2024-03-01", c.Format(ctx, "nokey", "on {0 2006-01-02}", day))
}
