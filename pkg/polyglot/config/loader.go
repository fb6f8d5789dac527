package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/colorword"
	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
	"github.com/cognicore/polyglot/pkg/polyglot/store"
	"github.com/cognicore/polyglot/pkg/polyglot/store/memstore"
	"github.com/cognicore/polyglot/pkg/polyglot/store/sqlite"
	"github.com/cognicore/polyglot/pkg/polyglot/tables"
	"github.com/cognicore/polyglot/pkg/polyglot/timeword"
)

// Loader builds components from a configuration
type Loader struct {
	Config *Config
	Logger *zap.Logger
}

// Components holds everything built from a configuration
type Components struct {
	Store      store.Store
	Catalog    *langmap.Catalog
	Registry   *tables.Registry
	Colors     *colorword.Parser
	Durations  timeword.Parser
	IgnoreCase bool
}

// Close releases the store.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// OpenStore opens the configured store backend.
func OpenStore(ctx context.Context, sc StoreConfig) (store.Store, error) {
	switch sc.Driver {
	case "", DriverMemory:
		return memstore.New(), nil
	case DriverSQLite:
		return sqlite.OpenSQLite(ctx, sc.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", sc.Driver)
	}
}

// Load opens the store, seeds and loads catalogs, loads tables and returns
// initialized components. A nil Config means Default().
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	st, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	comp := &Components{Store: st, IgnoreCase: cfg.CaseInsensitive()}

	fail := func(err error) (*Components, error) {
		st.Close()
		return nil, err
	}

	if cfg.SeedStandard() {
		langs, err := st.Languages(ctx)
		if err != nil {
			return fail(fmt.Errorf("list languages: %w", err))
		}
		if len(langs) == 0 {
			if err := langmap.SeedStandard(ctx, st); err != nil {
				return fail(fmt.Errorf("seed catalogs: %w", err))
			}
			logger.Debug("seeded built-in catalogs", zap.Strings("langs", langmap.StandardLanguages()))
		}
	}

	for _, path := range cfg.Catalogs {
		cf, err := LoadCatalog(path)
		if err != nil {
			return fail(fmt.Errorf("load catalog: %w", err))
		}
		n, err := cf.Apply(ctx, st)
		if err != nil {
			return fail(fmt.Errorf("apply catalog %s: %w", path, err))
		}
		logger.Debug("catalog loaded",
			zap.String("path", path),
			zap.String("lang", cf.Lang),
			zap.Int("changed", n))
	}

	comp.Catalog, err = langmap.New(st, langmap.Options{
		Lang:      cfg.Language,
		Fallbacks: cfg.Fallbacks,
		Capacity:  cfg.CacheCapacity,
		Logger:    logger,
	})
	if err != nil {
		return fail(fmt.Errorf("catalog: %w", err))
	}

	extra := make(map[string]action.Table)
	for _, path := range cfg.Tables {
		named, err := LoadTables(path)
		if err != nil {
			return fail(fmt.Errorf("load tables: %w", err))
		}
		for name, t := range named {
			extra[name] = t
		}
	}
	comp.Registry = tables.Default().Merge(extra)

	colorTable, _ := comp.Registry.Table(tables.ColorTable)
	comp.Colors, err = colorword.NewParser(colorTable, 0)
	if err != nil {
		return fail(fmt.Errorf("color parser: %w", err))
	}
	rateTable, _ := comp.Registry.Table(tables.RateTable)
	comp.Durations = timeword.Parser{Rates: rateTable}

	return comp, nil
}
