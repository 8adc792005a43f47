package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is a loosely-typed record as returned by either backend. Values may
// be JSON scalars, []byte from MySQL, or native Go types.
type Row = map[string]any

var numericJunk = regexp.MustCompile(`[^0-9.\-]+`)

// FirstAvailable returns the first non-nil value among the given keys.
func FirstAvailable(row Row, keys ...string) (any, bool) {
	if row == nil {
		return nil, false
	}
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Key renders an id value as a map key. Numeric ids print without a
// trailing ".0" so that 7, 7.0 and "7" all collide.
func Key(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToNumber coerces v into a decimal, stripping currency symbols and
// thousand separators from strings. Unparseable input yields fallback.
func ToNumber(v any, fallback decimal.Decimal) decimal.Decimal {
	if d, ok := toDecimal(v); ok {
		return d
	}
	return fallback
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case uint64:
		return decimal.NewFromUint64(t), true
	case float32:
		return floatDecimal(float64(t))
	case float64:
		return floatDecimal(t)
	case json.Number:
		return cleanDecimal(t.String())
	case string:
		return cleanDecimal(t)
	case []byte:
		return cleanDecimal(string(t))
	default:
		return decimal.Zero, false
	}
}

func floatDecimal(f float64) (decimal.Decimal, bool) {
	if f != f || f > 1e300 || f < -1e300 { // NaN or out of range
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func cleanDecimal(s string) (decimal.Decimal, bool) {
	cleaned := numericJunk.ReplaceAllString(s, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ToInt truncates the numeric coercion of v.
func ToInt(v any, fallback int) int {
	d, ok := toDecimal(v)
	if !ok {
		return fallback
	}
	return int(d.IntPart())
}

// ToString renders v as a trimmed string, or fallback for nil.
func ToString(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToBool accepts the usual boolean spellings plus MySQL tinyint values.
func ToBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string, []byte, json.Number, int, int32, int64, uint64, float32, float64:
		s := strings.ToLower(ToString(v, ""))
		switch s {
		case "true", "t", "yes", "si", "sí", "activo", "y":
			return true
		}
		if d, ok := toDecimal(t); ok {
			return !d.IsZero()
		}
		return false
	default:
		return false
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// ParseDate accepts native times, epoch numbers (seconds or millis) and
// the date string layouts seen across both backends. Unparseable input
// yields nil rather than an error.
func ParseDate(v any) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return t
	case int, int32, int64, uint64, float32, float64, json.Number:
		d, ok := toDecimal(t)
		if !ok || d.IsZero() {
			return nil
		}
		return epochTime(d.IntPart())
	case string:
		return parseDateString(t)
	case []byte:
		return parseDateString(string(t))
	default:
		return nil
	}
}

func epochTime(n int64) *time.Time {
	var ts time.Time
	if n > 1e11 || n < -1e11 { // milliseconds
		ts = time.UnixMilli(n).UTC()
	} else {
		ts = time.Unix(n, 0).UTC()
	}
	return &ts
}

func parseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}
