package action

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

// Code is the semantic category of an Action, e.g. "set weekday".
// Codes are not unique across a table; many actions share one code and
// differ by Value.
type Code int

// Known action codes.
const (
	NOP           Code = 0
	SetWeekday    Code = 3
	SetMonth      Code = 4
	SetZoneOffset Code = 5
	SetTimeOfDay  Code = 6
	SetDay        Code = 7
	SetDate       Code = 8
	SetRate       Code = 11
	SetVerbosity  Code = 13
	SetColor      Code = 32
)

// String returns a short name for known codes and the number otherwise.
func (c Code) String() string {
	switch c {
	case NOP:
		return "nop"
	case SetWeekday:
		return "weekday"
	case SetMonth:
		return "month"
	case SetZoneOffset:
		return "zone-offset"
	case SetTimeOfDay:
		return "time-of-day"
	case SetDay:
		return "day"
	case SetDate:
		return "date"
	case SetRate:
		return "rate"
	case SetVerbosity:
		return "verbosity"
	case SetColor:
		return "color"
	default:
		return strconv.Itoa(int(c))
	}
}

// ParseCode accepts a code name as printed by String, or a number.
func ParseCode(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range []Code{NOP, SetWeekday, SetMonth, SetZoneOffset, SetTimeOfDay,
		SetDay, SetDate, SetRate, SetVerbosity, SetColor} {
		if c.String() == s {
			return c, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: action code %q", internalerr.ErrInvalidInput, s)
	}
	return Code(n), nil
}

// Action is an immutable (code, value, keywords) triple: one selectable
// thing a user may name by any of its keywords or an abbreviation of one.
//
// Keyword order matters. Earlier keywords are tried first, and keyword
// positions are reported 1-based.
type Action struct {
	Code  Code
	Value int

	keys []string
}

// New creates an Action. The keys slice is kept as given, not copied:
// callers must not modify it after handing it over.
func New(code Code, value int, keys []string) *Action {
	return &Action{Code: code, Value: value, keys: keys}
}

// Equal reports whether two actions have the same code and value.
// Keyword lists are not compared.
func (a *Action) Equal(other *Action) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Code == other.Code && a.Value == other.Value
}

// Keys returns the keyword list. The returned slice is shared.
func (a *Action) Keys() []string { return a.keys }

// NumKeys returns the number of keyword slots, empty ones included.
func (a *Action) NumKeys() int { return len(a.keys) }

// Key returns the keyword at a 1-based position. Negative positions are
// accepted as produced by Match.Signed; zero and out-of-range positions
// report false.
func (a *Action) Key(n int) (string, bool) {
	if n < 0 {
		n = -n
	}
	if n == 0 || n > len(a.keys) {
		return "", false
	}
	return a.keys[n-1], true
}

func (a *Action) String() string {
	var b strings.Builder
	b.WriteString("Action(")
	b.WriteString(strconv.Itoa(int(a.Code)))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(a.Value))
	b.WriteString(") : ")
	if len(a.keys) == 0 {
		b.WriteString("<no keys>")
		return b.String()
	}
	b.WriteString(strings.Join(a.keys, ", "))
	return b.String()
}

// Table is an ordered list of candidate actions. Nil slots are allowed and
// skipped. A published table must not be modified.
type Table []*Action
