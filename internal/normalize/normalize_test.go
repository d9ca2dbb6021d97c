// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"underscore", "first_line", "first line"},
		{"title case", "First Line", "first line"},
		{"dash", "First-Line", "first line"},
		{"en and em dash", "a–b—c", "a b c"},
		{"punctuation", "Phase I/II (Open), Recruiting", "phase i ii open recruiting"},
		{"whitespace runs", "  Non   Small\tCell  ", "non small cell"},
		{"string array", []string{"USA", "France"}, "usa france"},
		{"any array", []any{"A", 2.0, true}, "a 2 true"},
		{"number", 12.5, "12.5"},
		{"bool", false, "false"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestStringifyJoinsArrays(t *testing.T) {
	assert.Equal(t, "USA, France", Stringify([]string{"USA", "France"}))
	assert.Equal(t, "12", Stringify(12.0))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"france", "united kingdom"}, Tokens("France, United_Kingdom, "))
	assert.Empty(t, Tokens(""))
	assert.Equal(t, []string{"Phase I/II", "Phase III"}, RawTokens(" Phase I/II ,Phase III,,"))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"18", 18, true},
		{" 18 years", 18, true},
		{"-2.5", -2.5, true},
		{".5mg", 0.5, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Number(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
	assert.Equal(t, 0.0, NumberOrZero("n/a"))
}

func TestNumberOutOfRange(t *testing.T) {
	f, ok := Number("1e300000000")
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = Number("-1e300000000 years")
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, -1))

	f, ok = Number("1e-300000000")
	assert.True(t, ok)
	assert.Zero(t, f)

	_, ok = Decimal("1e300000000")
	assert.False(t, ok)
	_, ok = Decimal("1e-300000000")
	assert.False(t, ok)
	_, ok = Decimal("1e300")
	assert.True(t, ok)
}

func TestDecimalKeepsPrecision(t *testing.T) {
	a, ok := Decimal("0.1")
	assert.True(t, ok)
	b, _ := Decimal("0.10")
	assert.True(t, a.Equal(b))
}

func TestDate(t *testing.T) {
	got, ok := Date("2024-01-15T23:59:00Z")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15", Day(got))

	got, ok = Date("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, ok = Date("not a date")
	assert.False(t, ok)
	_, ok = Date("")
	assert.False(t, ok)
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, float64(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).UnixMilli()), Timestamp("2024-01-15"))
	assert.Equal(t, 0.0, Timestamp("unknown"))
}
