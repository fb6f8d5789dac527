package action

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggestion is a keyword close to a token that did not resolve.
type Suggestion struct {
	Action   *Action
	Keyword  string
	Distance int
}

// Suggest returns up to limit keywords within edit distance of token,
// closest first. Ties keep table order. Comparison ignores case. Each action
// contributes at most its closest keyword.
func Suggest(table Table, filter Filter, token string, limit int) []Suggestion {
	tok, ok := NormalizeToken(strings.TrimSpace(token))
	if !ok || limit <= 0 {
		return nil
	}
	tok = strings.ToLower(tok)
	maxDist := (utf8.RuneCountInString(tok) + 1) / 2
	if maxDist < 1 {
		maxDist = 1
	}

	var out []Suggestion
	for _, a := range table {
		if !filter.accept(a) {
			continue
		}
		best := Suggestion{Distance: maxDist + 1}
		for _, key := range a.keys {
			if key == "" {
				continue
			}
			d := levenshtein.ComputeDistance(tok, strings.ToLower(key))
			if d < best.Distance {
				best = Suggestion{Action: a, Keyword: key, Distance: d}
			}
		}
		if best.Action != nil {
			out = append(out, best)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
