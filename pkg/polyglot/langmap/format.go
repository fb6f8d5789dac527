package langmap

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMessage fills the placeholders of pattern with args.
//
// A placeholder is "{" followed by optional spaces, an argument index and an
// optional sub-pattern up to the closing "}". "{{" yields a literal "{".
// The sub-pattern selects a form:
//
//	bool     {0yes?no}  first part for true, second for false
//	integer  {0s}       plural: the part before "?" (or all) when n != 1
//	time     {0 2006-01-02}  time.Time formatted with the layout
//
// Placeholders without a matching argument are copied unchanged.
func FormatMessage(pattern string, args ...any) string {
	if len(args) == 0 || !strings.Contains(pattern, "{") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch != '{' {
			b.WriteByte(ch)
			continue
		}
		if i+1 == len(pattern) {
			b.WriteByte('{')
			break
		}
		next := pattern[i+1]
		if next == '{' {
			b.WriteByte('{')
			i++
			continue
		}
		if next != ' ' && (next < '0' || next > '9') {
			b.WriteByte('{')
			continue
		}

		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			b.WriteString(pattern[i:])
			break
		}
		end += i
		if s, ok := formatArg(pattern[i+1:end], args); ok {
			b.WriteString(s)
		} else {
			b.WriteString(pattern[i : end+1])
		}
		i = end
	}
	return b.String()
}

// formatArg renders one placeholder body such as "0" or " 1are?is".
func formatArg(body string, args []any) (string, bool) {
	body = strings.TrimLeft(body, " ")
	n := 0
	for n < len(body) && body[n] >= '0' && body[n] <= '9' {
		n++
	}
	if n == 0 {
		return "", false
	}
	idx, err := strconv.Atoi(body[:n])
	if err != nil || idx >= len(args) {
		return "", false
	}
	sub := body[n:]
	arg := args[idx]

	switch v := arg.(type) {
	case bool:
		if sub == "" {
			return strconv.FormatBool(v), true
		}
		return chooseForm(sub, v), true
	case time.Time:
		if strings.TrimSpace(sub) == "" {
			return v.String(), true
		}
		return v.Format(strings.TrimSpace(sub)), true
	}

	if num, ok := asInt(arg); ok {
		if sub == "" {
			return strconv.FormatInt(num, 10), true
		}
		return chooseForm(sub, num != 1), true
	}
	return fmt.Sprint(arg), true
}

func chooseForm(sub string, first bool) string {
	q := strings.IndexByte(sub, '?')
	if q < 0 {
		if first {
			return sub
		}
		return ""
	}
	if first {
		return sub[:q]
	}
	return sub[q+1:]
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}
