package langmap

import (
	"context"
	"strings"
)

// Standard keys every seeded catalog provides.
var (
	monthKeys = [12]string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	}
	weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

	// LanguageKeys are the languages with a name entry.
	LanguageKeys = []string{"de", "en", "fr", "it", "es", "pt", "nl", "da"}
)

const (
	shortSuffix = "_s"

	normalTimeKey = "nrmzt"
	summerTimeKey = "somzt"
)

// zone families: key of normal time, key of summer time.
var zoneFamilies = map[string][2]string{
	"cet": {"cet", "cest"},
	"mez": {"cet", "cest"},
	"wet": {"wet", "west"},
	"wez": {"wet", "west"},
	"eet": {"eet", "eest"},
	"eez": {"eet", "eest"},
}

// StandardKeys returns every standard key in a fixed order: months, short
// months, weekdays, short weekdays, language names, time zones.
func StandardKeys() []string {
	keys := append([]string(nil), monthKeys[:]...)
	for _, k := range monthKeys {
		keys = append(keys, k+shortSuffix)
	}
	keys = append(keys, weekdayKeys[:]...)
	for _, k := range weekdayKeys {
		keys = append(keys, k+shortSuffix)
	}
	for _, k := range LanguageKeys {
		keys = append(keys, k, k+shortSuffix)
	}
	keys = append(keys,
		normalTimeKey, summerTimeKey, normalTimeKey+shortSuffix, summerTimeKey+shortSuffix)
	for _, fam := range [][2]string{{"cet", "cest"}, {"wet", "west"}, {"eet", "eest"}, {"gmt", "utc"}} {
		keys = append(keys, fam[0], fam[1], fam[0]+shortSuffix, fam[1]+shortSuffix)
	}
	return keys
}

// Month returns the name of month m (1..12), or "" when out of range.
func (c *Catalog) Month(ctx context.Context, m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return c.ValueOr(ctx, monthKeys[m-1], "")
}

// ShortMonth returns the abbreviated name of month m.
func (c *Catalog) ShortMonth(ctx context.Context, m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return c.ValueOr(ctx, monthKeys[m-1]+shortSuffix, "")
}

// Weekday returns the name of day d, 0 and 7 both being Sunday.
func (c *Catalog) Weekday(ctx context.Context, d int) string {
	if d < 0 || d > 7 {
		return ""
	}
	return c.ValueOr(ctx, weekdayKeys[d%7], "")
}

// ShortWeekday returns the abbreviated name of day d.
func (c *Catalog) ShortWeekday(ctx context.Context, d int) string {
	if d < 0 || d > 7 {
		return ""
	}
	return c.ValueOr(ctx, weekdayKeys[d%7]+shortSuffix, "")
}

// LanguageName returns the name of the language with the given two-letter
// code in the current language, or "" for an unknown code.
func (c *Catalog) LanguageName(ctx context.Context, code string, abbrev bool) string {
	code = strings.ToLower(NormalizeKey(code))
	if len(code) != 2 {
		return ""
	}
	for _, k := range LanguageKeys {
		if k != code {
			continue
		}
		if abbrev {
			k += shortSuffix
		}
		return c.ValueOr(ctx, k, "")
	}
	return ""
}

// SummerTime returns the generic word for normal or summer (daylight
// saving) time.
func (c *Catalog) SummerTime(ctx context.Context, summer, abbrev bool) string {
	key := normalTimeKey
	if summer {
		key = summerTimeKey
	}
	if abbrev {
		key += shortSuffix
	}
	return c.ValueOr(ctx, key, "")
}

// TimeZone returns the localized name of a three-letter European zone
// abbreviation. CET, WET and EET (and their German spellings) honour
// summer; GMT and UTC ignore it. Any other zone is reported as CET.
func (c *Catalog) TimeZone(ctx context.Context, zone string, summer, abbrev bool) string {
	fam := zoneFamilies["cet"]
	key := ""
	switch z := strings.ToLower(strings.TrimSpace(zone)); z {
	case "gmt", "utc":
		key = z
	default:
		if f, ok := zoneFamilies[z]; ok {
			fam = f
		}
	}
	if key == "" {
		key = fam[0]
		if summer {
			key = fam[1]
		}
	}
	if abbrev {
		key += shortSuffix
	}
	return c.ValueOr(ctx, key, "")
}
