package timeword

import (
	"errors"
	"testing"
	"time"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"250", 250 * time.Millisecond},
		{"250ms", 250 * time.Millisecond},
		{"15s", 15 * time.Second},
		{"5m", 5 * time.Minute},
		{"2h", 2 * time.Hour},
		{"3d", 72 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{" \"90s\" ", 90 * time.Second},
		{"10 m", 10 * time.Minute},
		{"0x10", 16 * time.Millisecond},
		{"#ff", 255 * time.Millisecond},
		{"010s", 8 * time.Second},
		{"-5s", -5 * time.Second},
		{"0", 0},
		{"hourly", time.Hour},
		{"Stündlich", time.Hour},
		{"täg", 24 * time.Hour},
		{"daily", 24 * time.Hour},
		{"wöchentlich", 7 * 24 * time.Hour},
		{"sec.", time.Second},
		{"quotidien", 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		in     string
		reason error
	}{
		{"", nil},
		{"  ", nil},
		{"12x", nil},
		{"08", nil},
		{"0x", nil},
		{"--5", nil},
		{"99999999999999999999", nil},
		{"9999999999999w", nil},
		{"yearly", internalerr.ErrNoMatch},
		{"h", internalerr.ErrInvalidToken},
		// por-hora is hourly, por-día daily.
		{"por", internalerr.ErrAmbiguous},
	}
	for _, tt := range tests {
		_, err := ParseDuration(tt.in)
		if err == nil {
			t.Errorf("ParseDuration(%q) succeeded, want error", tt.in)
			continue
		}
		if !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidInput", tt.in, err)
		}
		if tt.reason != nil && !errors.Is(err, tt.reason) {
			t.Errorf("ParseDuration(%q) error = %v, want %v", tt.in, err, tt.reason)
		}
	}
}

func TestParserCustomRates(t *testing.T) {
	p := Parser{Rates: action.Table{
		action.New(action.SetRate, 3, []string{"ogni-ora"}),
		action.New(action.SetColor, 4, []string{"ognigiorno"}),
	}}

	got, err := p.Parse("ogni-ora")
	if err != nil || got != time.Hour {
		t.Errorf("Parse(ogni-ora) = %v, %v, want 1h", got, err)
	}
	// Filtered out by code.
	if _, err := p.Parse("ognigiorno"); err == nil {
		t.Error("Parse(ognigiorno) should fail for a non-rate action")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Minute, "1h30m"},
		{8*24*time.Hour + 5*time.Second, "1w1d5s"},
		{time.Hour + 20*time.Millisecond, "1h20ms"},
		{-2 * time.Second, "-2s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
