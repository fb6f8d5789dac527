package langmap

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/store"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// CatalogFile is the YAML form of one language's entries.
type CatalogFile struct {
	Lang    string            `yaml:"lang"`
	Entries map[string]string `yaml:"entries"`
}

// ParseCatalog decodes and validates a catalog file.
func ParseCatalog(data []byte) (*CatalogFile, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	lang, err := NormalizeLanguage(cf.Lang)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", internalerr.ErrInvalidConfig, err)
	}
	cf.Lang = lang
	return &cf, nil
}

// Writer receives catalog entries. Both store.Store and *Catalog are
// writers.
type Writer interface {
	Put(ctx context.Context, lang, key, value string) error
}

// Apply writes every entry of cf into w in key order and returns the number
// written. When w can also look entries up, unchanged values are skipped.
func (cf *CatalogFile) Apply(ctx context.Context, w Writer) (int, error) {
	keys := make([]string, 0, len(cf.Entries))
	for k := range cf.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lk, canLookup := w.(interface {
		Lookup(ctx context.Context, lang, key string) (string, bool, error)
	})

	n := 0
	for _, k := range keys {
		key, val := NormalizeKey(k), cf.Entries[k]
		if canLookup {
			old, ok, err := lk.Lookup(ctx, cf.Lang, key)
			if err != nil {
				return n, fmt.Errorf("catalog %s: %w", cf.Lang, err)
			}
			if ok && old == val {
				continue
			}
		}
		if err := w.Put(ctx, cf.Lang, key, val); err != nil {
			return n, fmt.Errorf("catalog %s: %w", cf.Lang, err)
		}
		n++
	}
	return n, nil
}

// StandardLanguages returns the languages of the built-in catalogs.
func StandardLanguages() []string {
	files, _ := fs.Glob(seedFS, "seed/*.yaml")
	langs := make([]string, 0, len(files))
	for _, f := range files {
		cf, err := readSeed(f)
		if err != nil {
			continue
		}
		langs = append(langs, cf.Lang)
	}
	sort.Strings(langs)
	return langs
}

// SeedStandard loads the built-in catalogs into st.
func SeedStandard(ctx context.Context, st store.Store) error {
	files, err := fs.Glob(seedFS, "seed/*.yaml")
	if err != nil {
		return err
	}
	for _, f := range files {
		cf, err := readSeed(f)
		if err != nil {
			return err
		}
		if _, err := cf.Apply(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func readSeed(name string) (*CatalogFile, error) {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	cf, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cf, nil
}
