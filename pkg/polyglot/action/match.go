package action

import (
	"strings"
	"unicode/utf8"
)

// AbbreviationMarker is removed once from the end of a token before
// matching, so "Mo." and "Mo" select the same keywords.
const AbbreviationMarker = '.'

// MinTokenLen is the shortest token, in runes, that can match anything.
const MinTokenLen = 2

// MatchKind tells how a token matched one action.
type MatchKind int

const (
	NoMatch MatchKind = iota
	Abbreviation
	Exact
)

func (k MatchKind) String() string {
	switch k {
	case NoMatch:
		return "none"
	case Abbreviation:
		return "abbreviation"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Match is the result of matching a token against one action. Index is the
// 1-based position of the keyword that matched, 0 for NoMatch.
type Match struct {
	Kind  MatchKind
	Index int
}

// Signed folds kind and position into one integer: +index for an exact
// match, -index for an abbreviation, 0 for none.
func (m Match) Signed() int {
	switch m.Kind {
	case Exact:
		return m.Index
	case Abbreviation:
		return -m.Index
	default:
		return 0
	}
}

// MatchFromSigned is the inverse of Match.Signed.
func MatchFromSigned(n int) Match {
	switch {
	case n > 0:
		return Match{Kind: Exact, Index: n}
	case n < 0:
		return Match{Kind: Abbreviation, Index: -n}
	default:
		return Match{}
	}
}

// NormalizeToken strips one trailing AbbreviationMarker and reports whether
// what is left is long enough to match.
func NormalizeToken(token string) (string, bool) {
	if utf8.RuneCountInString(token) < MinTokenLen {
		return "", false
	}
	if strings.HasSuffix(token, string(AbbreviationMarker)) {
		token = token[:len(token)-1]
		if utf8.RuneCountInString(token) < MinTokenLen {
			return "", false
		}
	}
	return token, true
}

// Match matches token against the action's keywords in stored order and
// returns the first hit. The token is normalized first.
func (a *Action) Match(token string, ignoreCase bool) Match {
	if a == nil {
		return Match{}
	}
	tok, ok := NormalizeToken(token)
	if !ok {
		return Match{}
	}
	return a.match(tok, utf8.RuneCountInString(tok), ignoreCase)
}

// match expects a normalized token and its rune count.
func (a *Action) match(tok string, tokLen int, ignoreCase bool) Match {
	for i, key := range a.keys {
		if key == "" {
			continue
		}
		keyLen := utf8.RuneCountInString(key)
		if keyLen < tokLen {
			continue
		}
		if !hasPrefix(key, tok, tokLen, ignoreCase) {
			continue
		}
		if keyLen == tokLen {
			return Match{Kind: Exact, Index: i + 1}
		}
		return Match{Kind: Abbreviation, Index: i + 1}
	}
	return Match{}
}

// hasPrefix reports whether the first n runes of s equal prefix, which
// holds exactly n runes.
func hasPrefix(s, prefix string, n int, ignoreCase bool) bool {
	if !ignoreCase {
		return strings.HasPrefix(s, prefix)
	}
	end := 0
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return strings.EqualFold(s[:end], prefix)
}
