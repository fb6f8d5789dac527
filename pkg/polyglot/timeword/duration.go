// Package timeword parses and formats durations written as numbers with a
// unit or as rate keywords such as "hourly" or "täglich".
package timeword

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
	"github.com/cognicore/polyglot/pkg/polyglot/tables"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// rateDurations maps tables.Rates values to periods.
var rateDurations = map[int]time.Duration{
	tables.Secondly: time.Second,
	tables.Minutely: time.Minute,
	tables.Hourly:   time.Hour,
	tables.Daily:    day,
	tables.Weekly:   week,
}

// Parser parses durations, resolving keywords in Rates.
type Parser struct {
	Rates action.Table
}

var defaultParser = Parser{Rates: tables.Rates}

// ParseDuration parses s with the built-in rate keywords.
func ParseDuration(s string) (time.Duration, error) {
	return defaultParser.Parse(s)
}

// Parse parses s.
//
// A leading letter makes s a rate keyword, matched ignoring case and
// abbreviations allowed. Otherwise s is an integer (decimal, 0x or #
// hexadecimal, leading 0 octal) with an optional unit: ms, s, m, h, d or w.
// Without a unit the number counts milliseconds.
func (p Parser) Parse(s string) (time.Duration, error) {
	s = langmap.NormalizeKey(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", internalerr.ErrInvalidInput)
	}

	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsLetter(first) {
		return p.keyword(s)
	}

	num, unit := splitUnit(s)
	n, err := decodeInt(langmap.NormalizeKey(num))
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q: %v", internalerr.ErrInvalidInput, s, err)
	}
	limit := int64(math.MaxInt64 / unit)
	if n > limit || n < -limit {
		return 0, fmt.Errorf("%w: duration %q out of range", internalerr.ErrInvalidInput, s)
	}
	return time.Duration(n) * unit, nil
}

func (p Parser) keyword(s string) (time.Duration, error) {
	a, err := action.ResolveErr(p.Rates, action.ByCode(action.SetRate), s, true)
	if err != nil {
		return 0, fmt.Errorf("%w: duration keyword: %w", internalerr.ErrInvalidInput, err)
	}
	d, ok := rateDurations[a.Value]
	if !ok {
		return 0, fmt.Errorf("%w: rate value %d", internalerr.ErrInvalidInput, a.Value)
	}
	return d, nil
}

func splitUnit(s string) (string, time.Duration) {
	if len(s) < 2 {
		return s, time.Millisecond
	}
	switch {
	case strings.HasSuffix(s, "ms"):
		return s[:len(s)-2], time.Millisecond
	case strings.HasSuffix(s, "s"):
		return s[:len(s)-1], time.Second
	case strings.HasSuffix(s, "m"):
		return s[:len(s)-1], time.Minute
	case strings.HasSuffix(s, "h"):
		return s[:len(s)-1], time.Hour
	case strings.HasSuffix(s, "d"):
		return s[:len(s)-1], day
	case strings.HasSuffix(s, "w"):
		return s[:len(s)-1], week
	}
	return s, time.Millisecond
}

// decodeInt accepts an optional sign followed by a decimal, 0x/0X/#
// hexadecimal or 0-prefixed octal number.
func decodeInt(s string) (int64, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "#"):
		base, s = 16, s[1:]
	case len(s) > 1 && s[0] == '0':
		base, s = 8, s[1:]
	}
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, strconv.ErrSyntax
	}

	u, err := strconv.ParseUint(s, base, 63)
	if err != nil {
		return 0, err
	}
	n := int64(u)
	if neg {
		n = -n
	}
	return n, nil
}

// FormatDuration renders d as weeks, days, hours and minutes followed by
// seconds, e.g. "1w2d3h4m5.5s". Durations under a second print as
// milliseconds.
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		if d == math.MinInt64 {
			d = math.MaxInt64
		} else {
			d = -d
		}
	}
	d = d.Truncate(time.Millisecond)
	if d < time.Second {
		fmt.Fprintf(&b, "%dms", d.Milliseconds())
		return b.String()
	}

	for _, u := range []struct {
		unit time.Duration
		sym  byte
	}{{week, 'w'}, {day, 'd'}, {time.Hour, 'h'}, {time.Minute, 'm'}} {
		if n := d / u.unit; n > 0 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
			b.WriteByte(u.sym)
			d %= u.unit
		}
	}
	if d == 0 {
		return b.String()
	}
	if d < time.Second {
		fmt.Fprintf(&b, "%dms", d.Milliseconds())
		return b.String()
	}
	secs := strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
	secs = strings.TrimRight(strings.TrimRight(secs, "0"), ".")
	b.WriteString(secs)
	b.WriteByte('s')
	return b.String()
}
