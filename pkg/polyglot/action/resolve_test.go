package action

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

func weekdays() Table {
	return Table{
		New(SetWeekday, 1, []string{"Monday", "Montag"}),
		New(SetWeekday, 2, []string{"Tuesday", "Dienstag"}),
	}
}

func TestResolveWeekdays(t *testing.T) {
	table := weekdays()

	tests := []struct {
		token     string
		wantValue int
		wantOK    bool
	}{
		{"Mo", 1, true},
		{"Mo.", 1, true},
		{"M", 0, false},
		{"M.", 0, false},
		{"Montag", 1, true},
		{"Tu", 2, true},
		{"Di", 2, true},
		{"monday", 1, true},
		{"Mittwoch", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := Resolve(table, nil, tt.token, true)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			continue
		}
		if ok && got.Value != tt.wantValue {
			t.Errorf("Resolve(%q) = %v, want value %d", tt.token, got, tt.wantValue)
		}
		if !ok && got != nil {
			t.Errorf("Resolve(%q) returned %v with ok=false", tt.token, got)
		}
	}
}

func TestResolveAmbiguousAbbreviation(t *testing.T) {
	table := append(weekdays(), New(SetWeekday, 9, []string{"Monaco"}))

	if got, ok := Resolve(table, nil, "Mo", true); ok {
		t.Fatalf("Resolve(Mo) = %v, want no result for ambiguous abbreviation", got)
	}

	_, err := ResolveErr(table, nil, "Mo", true)
	if !errors.Is(err, internalerr.ErrAmbiguous) {
		t.Errorf("ResolveErr(Mo) error = %v, want ErrAmbiguous", err)
	}

	// A longer token separates the two again.
	got, ok := Resolve(table, nil, "Mond", true)
	if !ok || got.Value != 1 {
		t.Errorf("Resolve(Mond) = %v, %v, want value 1", got, ok)
	}
}

func TestResolveEqualAbbreviationsAreNotAmbiguous(t *testing.T) {
	table := Table{
		New(SetWeekday, 1, []string{"Monday"}),
		New(SetMonth, 5, []string{"Mai"}),
		New(SetWeekday, 1, []string{"Montag"}),
	}
	// "Mon" hits both weekday entries, which are equal by code and value.
	got, ok := Resolve(table, nil, "Mon", true)
	if !ok {
		t.Fatal("Resolve(Mon) returned no result, want the Monday entry")
	}
	if got != table[0] {
		t.Errorf("Resolve(Mon) = %v, want the first equal entry %v", got, table[0])
	}
}

func TestResolveExactBeatsEarlierAmbiguity(t *testing.T) {
	table := Table{
		New(SetWeekday, 1, []string{"Monday"}),
		New(SetWeekday, 9, []string{"Monaco"}),
		New(SetMonth, 3, []string{"Mon"}),
	}
	got, ok := Resolve(table, nil, "Mon", true)
	if !ok {
		t.Fatal("Resolve(Mon) returned no result, want the exact match")
	}
	if got.Code != SetMonth || got.Value != 3 {
		t.Errorf("Resolve(Mon) = %v, want Action(4, 3)", got)
	}
}

func TestResolveExactBeatsLaterAbbreviation(t *testing.T) {
	table := Table{
		New(SetColor, 0x0000FF, []string{"bl", "blue"}),
		New(SetColor, 0x000000, []string{"black"}),
	}
	got, ok := Resolve(table, nil, "bl", true)
	if !ok || got.Value != 0x0000FF {
		t.Errorf("Resolve(bl) = %v, %v, want blue", got, ok)
	}
}

func TestResolveShortTokens(t *testing.T) {
	table := weekdays()
	for _, tok := range []string{"", "M", ".", "..", "M.", "é"} {
		if got, ok := Resolve(table, nil, tok, true); ok {
			t.Errorf("Resolve(%q) = %v, want no result", tok, got)
		}
		if _, err := ResolveErr(table, nil, tok, true); !errors.Is(err, internalerr.ErrInvalidToken) {
			t.Errorf("ResolveErr(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	if got, ok := Resolve(nil, nil, "Mo", true); ok {
		t.Errorf("Resolve(nil table) = %v, want no result", got)
	}
	if got, ok := Resolve(Table{}, nil, "Mo", true); ok {
		t.Errorf("Resolve(empty table) = %v, want no result", got)
	}
	_, err := ResolveErr(Table{nil, nil}, nil, "Mo", true)
	if !errors.Is(err, internalerr.ErrNoMatch) {
		t.Errorf("ResolveErr(nil entries) error = %v, want ErrNoMatch", err)
	}
}

func TestResolveSkipsNilEntries(t *testing.T) {
	table := Table{nil, New(SetWeekday, 2, []string{"Tuesday"}), nil}
	got, ok := Resolve(table, nil, "Tue", true)
	if !ok || got.Value != 2 {
		t.Errorf("Resolve(Tue) = %v, %v, want value 2", got, ok)
	}
}

func TestResolveCaseSensitive(t *testing.T) {
	table := weekdays()
	if got, ok := Resolve(table, nil, "mo", false); ok {
		t.Errorf("Resolve(mo, case-sensitive) = %v, want no result", got)
	}
	if got, ok := Resolve(table, nil, "Mo", false); !ok || got.Value != 1 {
		t.Errorf("Resolve(Mo, case-sensitive) = %v, %v, want value 1", got, ok)
	}
}

func TestResolveWithFilter(t *testing.T) {
	table := Table{
		New(SetMonth, 5, []string{"Mai", "May"}),
		New(SetColor, 0xFF00FF, []string{"magenta"}),
	}

	if got, ok := Resolve(table, nil, "Ma", true); ok {
		t.Errorf("Resolve(Ma) without filter = %v, want ambiguous", got)
	}

	got, ok := Resolve(table, ByCode(SetColor), "Ma", true)
	if !ok || got.Value != 0xFF00FF {
		t.Errorf("Resolve(Ma, colors) = %v, %v, want magenta", got, ok)
	}

	rejectAll := Filter(func(*Action) bool { return false })
	if got, ok := Resolve(table, rejectAll, "Mai", true); ok {
		t.Errorf("Resolve with reject-all filter = %v, want no result", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	table := append(weekdays(), New(SetWeekday, 9, []string{"Monaco"}))
	first, firstOK := Resolve(table, nil, "Tu", true)
	for i := 0; i < 50; i++ {
		got, ok := Resolve(table, nil, "Tu", true)
		if ok != firstOK || got != first {
			t.Fatalf("iteration %d: Resolve(Tu) = %v, %v; first call gave %v, %v", i, got, ok, first, firstOK)
		}
	}
}

func TestCandidates(t *testing.T) {
	table := append(weekdays(), New(SetWeekday, 9, []string{"Monaco"}))

	got := Candidates(table, nil, "Mon", true)

	type row struct {
		Value   int
		Kind    MatchKind
		Keyword string
	}
	var rows []row
	for _, c := range got {
		rows = append(rows, row{Value: c.Action.Value, Kind: c.Match.Kind, Keyword: c.Keyword()})
	}
	want := []row{
		{Value: 1, Kind: Abbreviation, Keyword: "Monday"},
		{Value: 9, Kind: Abbreviation, Keyword: "Monaco"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Candidates(Mon) mismatch (-want +got):\n%s", diff)
	}

	if c := Candidates(table, nil, "M", true); c != nil {
		t.Errorf("Candidates(M) = %v, want nil", c)
	}
}
