package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the top-level configuration file.
type Config struct {
	Language      string      `yaml:"language"`
	Fallbacks     []string    `yaml:"fallbacks"`
	CacheCapacity int         `yaml:"cache_capacity"`
	IgnoreCase    *bool       `yaml:"ignore_case"`
	Seed          *bool       `yaml:"seed"`
	Store         StoreConfig `yaml:"store"`
	Catalogs      []string    `yaml:"catalogs"`
	Tables        []string    `yaml:"tables"`
}

// StoreConfig selects the translation store backend.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used without a file: English, the
// built-in catalogs in memory and case-insensitive keywords.
func Default() *Config {
	return &Config{
		Language:      langmap.DefaultLanguage,
		CacheCapacity: langmap.DefaultCapacity,
		Store:         StoreConfig{Driver: DriverMemory},
	}
}

// Load reads a configuration file. Relative catalog, table and store paths
// are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	dir := filepath.Dir(path)
	for i, p := range cfg.Catalogs {
		cfg.Catalogs[i] = resolve(dir, p)
	}
	for i, p := range cfg.Tables {
		cfg.Tables[i] = resolve(dir, p)
	}
	if cfg.Store.Path != "" && cfg.Store.Path != ":memory:" {
		cfg.Store.Path = resolve(dir, cfg.Store.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks field values and normalizes the language codes.
func (c *Config) Validate() error {
	if c.Language == "" {
		c.Language = langmap.DefaultLanguage
	}
	lang, err := langmap.NormalizeLanguage(c.Language)
	if err != nil {
		return fmt.Errorf("%w: language: %v", internalerr.ErrInvalidConfig, err)
	}
	c.Language = lang

	for i, fb := range c.Fallbacks {
		code, err := langmap.NormalizeLanguage(fb)
		if err != nil {
			return fmt.Errorf("%w: fallbacks: %v", internalerr.ErrInvalidConfig, err)
		}
		c.Fallbacks[i] = code
	}

	if c.CacheCapacity < 0 {
		return fmt.Errorf("%w: cache_capacity must not be negative", internalerr.ErrInvalidConfig)
	}

	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "", DriverMemory:
		c.Store.Driver = DriverMemory
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: sqlite store needs a path", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store driver %q", internalerr.ErrInvalidConfig, c.Store.Driver)
	}
	return nil
}

// CaseInsensitive reports whether keywords match ignoring case. It
// defaults to true.
func (c *Config) CaseInsensitive() bool {
	return c.IgnoreCase == nil || *c.IgnoreCase
}

// SeedStandard reports whether the built-in catalogs are loaded into an
// empty store. It defaults to true.
func (c *Config) SeedStandard() bool {
	return c.Seed == nil || *c.Seed
}

// TableFile is the YAML form of one or more named candidate tables.
type TableFile struct {
	Tables []TableSpec `yaml:"tables"`
}

// TableSpec is one named table.
type TableSpec struct {
	Name    string       `yaml:"name"`
	Actions []ActionSpec `yaml:"actions"`
}

// ActionSpec is one action. Code is a name such as "color" or a number.
type ActionSpec struct {
	Code  string   `yaml:"code"`
	Value int      `yaml:"value"`
	Keys  []string `yaml:"keys"`
}

// LoadTables reads named tables from path. Files ending in .txt use the
// line format read by ParseKeywordList and name their single table after
// the file; anything else is YAML.
func LoadTables(path string) (map[string]action.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		t, err := ParseKeywordList(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return map[string]action.Table{name: t}, nil
	}

	var tf TableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	out := make(map[string]action.Table, len(tf.Tables))
	for _, spec := range tf.Tables {
		name := strings.ToLower(strings.TrimSpace(spec.Name))
		if name == "" {
			return nil, fmt.Errorf("%w: %s: table without name", internalerr.ErrInvalidConfig, path)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: %s: table %q", internalerr.ErrDuplicate, path, name)
		}
		t := make(action.Table, 0, len(spec.Actions))
		for i, as := range spec.Actions {
			code, err := action.ParseCode(as.Code)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: table %q action %d: %v",
					internalerr.ErrInvalidConfig, path, name, i+1, err)
			}
			t = append(t, action.New(code, as.Value, cleanKeys(as.Keys)))
		}
		out[name] = t
	}
	return out, nil
}

// ParseKeywordList reads one action per line:
//
//	code|value|keyword1|keyword2|...
//
// Blank lines and lines starting with # are skipped. Values may be decimal
// or 0x hexadecimal.
func ParseKeywordList(data []byte) (action.Table, error) {
	var t action.Table
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: line %d: want code|value|keyword...", internalerr.ErrInvalidConfig, lineNo)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		code, err := action.ParseCode(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", internalerr.ErrInvalidConfig, lineNo, err)
		}
		value, err := strconv.ParseInt(parts[1], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: value %q", internalerr.ErrInvalidConfig, lineNo, parts[1])
		}
		t = append(t, action.New(code, int(value), cleanKeys(parts[2:])))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// cleanKeys trims keywords and drops empty ones.
func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// LoadCatalog reads a catalog file of one language.
func LoadCatalog(path string) (*langmap.CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cf, err := langmap.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cf, nil
}
