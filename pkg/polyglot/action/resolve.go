package action

import (
	"fmt"
	"unicode/utf8"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

// abbrevState tracks abbreviation hits during one scan. It only moves
// forward: unset -> candidate -> ambiguous.
type abbrevState int

const (
	abbrevUnset abbrevState = iota
	abbrevCandidate
	abbrevAmbiguous
)

type abbrevTracker struct {
	state     abbrevState
	candidate *Action
}

func (t *abbrevTracker) add(a *Action) {
	switch t.state {
	case abbrevUnset:
		t.state = abbrevCandidate
		t.candidate = a
	case abbrevCandidate:
		if !a.Equal(t.candidate) {
			t.state = abbrevAmbiguous
			t.candidate = nil
		}
	}
}

// outcome explains why resolve returned nil.
type outcome int

const (
	resolved outcome = iota
	invalidToken
	noMatch
	ambiguous
)

// Resolve selects one action from table for token.
//
// The first exact keyword match anywhere in the table wins at once. Without
// an exact match, an abbreviation wins only if every abbreviation hit
// belongs to actions equal to the first one hit. Invalid tokens, no match
// and ambiguous abbreviations all return (nil, false).
func Resolve(table Table, filter Filter, token string, ignoreCase bool) (*Action, bool) {
	a, _ := resolve(table, filter, token, ignoreCase)
	return a, a != nil
}

// ResolveErr is Resolve with the reason for a miss: the returned error wraps
// internalerr.ErrInvalidToken, ErrNoMatch or ErrAmbiguous.
func ResolveErr(table Table, filter Filter, token string, ignoreCase bool) (*Action, error) {
	a, out := resolve(table, filter, token, ignoreCase)
	switch out {
	case resolved:
		return a, nil
	case invalidToken:
		return nil, fmt.Errorf("%w: %q", internalerr.ErrInvalidToken, token)
	case ambiguous:
		return nil, fmt.Errorf("%w: %q", internalerr.ErrAmbiguous, token)
	default:
		return nil, fmt.Errorf("%w: %q", internalerr.ErrNoMatch, token)
	}
}

func resolve(table Table, filter Filter, token string, ignoreCase bool) (*Action, outcome) {
	tok, ok := NormalizeToken(token)
	if !ok {
		return nil, invalidToken
	}
	tokLen := utf8.RuneCountInString(tok)

	var abbrev abbrevTracker
	for _, a := range table {
		if !filter.accept(a) {
			continue
		}
		m := a.match(tok, tokLen, ignoreCase)
		switch m.Kind {
		case Exact:
			return a, resolved
		case Abbreviation:
			abbrev.add(a)
		}
	}

	switch abbrev.state {
	case abbrevCandidate:
		return abbrev.candidate, resolved
	case abbrevAmbiguous:
		return nil, ambiguous
	default:
		return nil, noMatch
	}
}

// Candidate is one action that a token matched, with how it matched.
type Candidate struct {
	Action *Action
	Match  Match
}

// Keyword returns the keyword that produced the match.
func (c Candidate) Keyword() string {
	k, _ := c.Action.Key(c.Match.Index)
	return k
}

// Candidates returns every accepted action that token matches, in table
// order. It is the per-entry view behind Resolve's single answer.
func Candidates(table Table, filter Filter, token string, ignoreCase bool) []Candidate {
	tok, ok := NormalizeToken(token)
	if !ok {
		return nil
	}
	tokLen := utf8.RuneCountInString(tok)

	var out []Candidate
	for _, a := range table {
		if !filter.accept(a) {
			continue
		}
		if m := a.match(tok, tokLen, ignoreCase); m.Kind != NoMatch {
			out = append(out, Candidate{Action: a, Match: m})
		}
	}
	return out
}

// Resolve is shorthand for the package-level Resolve over t.
func (t Table) Resolve(filter Filter, token string, ignoreCase bool) (*Action, bool) {
	return Resolve(t, filter, token, ignoreCase)
}
