// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes raw trial values into comparable tokens and
// parses the numbers and dates embedded in free-form source text.
//
// See docs/ARCHITECTURE § Text Normalizer.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Text returns the canonical comparison form of value: arrays are joined
// with ", " first, then the result is lowercased, underscores and the
// punctuation ( ) , / - – — become spaces, whitespace runs collapse to one
// space, and the ends are trimmed. "first_line", "First Line" and
// "First-Line" all yield "first line".
func Text(value any) string {
	return String(Stringify(value))
}

// String normalizes a string that is already in display form.
func String(s string) string {
	return strings.Join(strings.Fields(strings.Map(separator, strings.ToLower(s))), " ")
}

func separator(r rune) rune {
	switch r {
	case '_', '(', ')', ',', '/', '-', '–', '—':
		return ' '
	}
	return r
}

// Stringify renders a scalar or array value in display form without
// normalizing it. nil becomes "".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ", ")
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber renders f the shortest way that round-trips, so 12 prints
// as "12" and 1.5 as "1.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Tokens splits a raw comma-separated value and normalizes each element,
// dropping blanks.
func Tokens(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := String(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// RawTokens splits a raw comma-separated value into trimmed, non-blank
// elements without normalizing them.
func RawTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// leadingNumber matches the numeric prefix a lenient float parser accepts:
// "18 years" yields "18", ".5mg" yields ".5".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// maxExponent bounds the decimal exponents Decimal accepts. Anything wider
// than float64 range would force an exact big-int rescale on every compare.
const maxExponent = 400

// Decimal parses the leading number of s. It reports false when s does not
// start with a number after leading whitespace, or when its exponent is
// outside float64 range; Number still parses those.
func Decimal(s string) (decimal.Decimal, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// Number parses the leading number of s as a float64. Values beyond float64
// range saturate to ±Inf or 0 instead of failing.
func Number(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// NumberOrZero parses the leading number of s, defaulting to 0.
func NumberOrZero(s string) float64 {
	f, _ := Number(s)
	return f
}

// Date parses s in any of the common date layouts. Values without a zone
// are read as UTC.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Timestamp returns the epoch milliseconds of s, or 0 when s is not a date.
// A missing date therefore sorts as the earliest possible value.
func Timestamp(s string) float64 {
	t, ok := Date(s)
	if !ok {
		return 0
	}
	return float64(t.UnixMilli())
}

// Day truncates t to its UTC calendar day key (YYYY-MM-DD).
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
