// Package colorword turns colour definitions such as "red", "Weinrot",
// "#FF8000" or "color=0x00ff00" into RGB colours.
package colorword

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
	"github.com/cognicore/polyglot/pkg/polyglot/tables"
)

// DefaultCacheSize is the number of parsed definitions a Parser keeps.
const DefaultCacheSize = 256

var (
	White  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black  = color.RGBA{A: 0xFF}
	Yellow = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	Silver = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

var prefill = map[string]color.RGBA{
	"white":  White,
	"ws":     White,
	"yellow": Yellow,
	"ge":     Yellow,
	"black":  Black,
	"sw":     Black,
	"silver": Silver,
	"si":     Silver,
}

// Parser parses colour definitions and remembers recent results.
// It is safe for concurrent use.
type Parser struct {
	table action.Table
	cache *lru.Cache[string, color.RGBA]
}

// NewParser creates a parser resolving names in table, or tables.Colors
// when table is nil.
func NewParser(table action.Table, size int) (*Parser, error) {
	if table == nil {
		table = tables.Colors
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, color.RGBA](size)
	if err != nil {
		return nil, err
	}
	for k, v := range prefill {
		cache.Add(k, v)
	}
	return &Parser{table: table, cache: cache}, nil
}

// Parse returns the colour for def.
//
// def may start with "color=" or "colour="; only the first word after it
// counts. "#rrggbb" is always numeric. Otherwise a number (0x hex, leading
// 0 octal, decimal) is tried before keyword resolution in the colour table.
func (p *Parser) Parse(def string) (color.RGBA, bool) {
	def = langmap.NormalizeKey(def)
	if def == "" {
		return color.RGBA{}, false
	}
	key := cases.Fold().String(def)
	if c, ok := p.cache.Get(key); ok {
		return c, true
	}

	spec := stripAssignment(def)
	if spec == "" {
		return color.RGBA{}, false
	}

	onlyNumber := false
	if len(spec) > 1 && spec[0] == '#' {
		onlyNumber = true
		spec = "0x" + spec[1:]
	}

	c, ok := decodeRGB(spec)
	if !ok && !onlyNumber {
		if a, found := action.Resolve(p.table, action.ByCode(action.SetColor), spec, true); found {
			c, ok = FromValue(a.Value), true
		}
	}
	if !ok {
		return color.RGBA{}, false
	}
	p.cache.Add(key, c)
	return c, true
}

// Len returns the number of cached definitions.
func (p *Parser) Len() int { return p.cache.Len() }

// FromValue converts 0xRRGGBB to an opaque colour.
func FromValue(v int) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}

// Value converts c back to 0xRRGGBB, ignoring alpha.
func Value(c color.RGBA) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// Foreground picks black or white text for background bg by its weighted
// luminance.
func Foreground(bg color.RGBA) color.RGBA {
	gray := int(bg.R)*222 + int(bg.G)*707 + int(bg.B)*71
	if gray > 130000 {
		return Black
	}
	return White
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%06x", Value(c))
}

func stripAssignment(def string) string {
	name, val, found := strings.Cut(def, "=")
	if !found {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "color", "colour", "farbe":
	default:
		return def
	}
	val = strings.TrimSpace(val)
	if i := strings.IndexAny(val, " \t"); i > 0 {
		val = val[:i]
	}
	return langmap.NormalizeKey(val)
}

func decodeRGB(s string) (color.RGBA, bool) {
	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, digits = 16, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, digits = 8, s[1:]
	}
	if digits == "" {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil || v > 0xFFFFFF {
		return color.RGBA{}, false
	}
	return FromValue(int(v)), true
}
