package checks

import (
	"strings"
	"time"
)

func init() {
	Register("ValDate", func() Check { return Date{} })
	Register("ValDatef", func() Check { return DateFormat{} })
}

// dateLayouts are the layouts accepted by the date check.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02-Jan-2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// Date passes for time.Time values and for strings holding a real calendar
// date in one of the common layouts.
type Date struct{}

func (Date) Run(_ string, input any, _ []any) bool {
	switch v := input.(type) {
	case time.Time:
		return true
	case *time.Time:
		return v != nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false
		}
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// DateFormat passes when the input is a date written exactly in one of the
// formats given as parameters. Formats are Go layouts ("2006-01-02") or
// PHP-style tokens ("Y-m-d"); a format without digits is read as tokens.
type DateFormat struct{}

func (DateFormat) Run(_ string, input any, params []any) bool {
	if len(params) == 0 {
		return false
	}

	s, ok := input.(string)
	if !ok || s == "" {
		return false
	}

	for _, p := range params {
		layout := toLayout(toString(p))
		if layout == "" {
			continue
		}
		t, err := time.Parse(layout, s)
		if err == nil && t.Format(layout) == s {
			return true
		}
	}
	return false
}

var phpDateTokens = map[rune]string{
	'd': "02",
	'D': "Mon",
	'j': "2",
	'l': "Monday",
	'm': "01",
	'M': "Jan",
	'n': "1",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
}

// toLayout returns format unchanged when it already is a Go layout and
// translates PHP date tokens otherwise. A backslash escapes the next rune.
func toLayout(format string) string {
	if strings.ContainsAny(format, "0123456789") {
		return format
	}

	var b strings.Builder
	escaped := false
	for _, r := range format {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		default:
			if token, ok := phpDateTokens[r]; ok {
				b.WriteString(token)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
