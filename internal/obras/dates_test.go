package obras

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateSerials(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Time
	}{
		{"numeric serial", 45292.0, date(2024, time.January, 1)},
		{"serial as text", "45292", date(2024, time.January, 1)},
		{"serial with time fraction", 45292.5, date(2024, time.January, 1)},
		{"serial end of 2023", 45290.0, date(2023, time.December, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"spanish full phrase", "28 de noviembre de 2025", date(2025, time.November, 28)},
		{"month and year", "abril 2026", date(2026, time.April, 1)},
		{"abbreviated month short year", "dic 24", date(2024, time.December, 1)},
		{"english month", "march 2026", date(2026, time.March, 1)},
		{"spanish abbreviated phrase", "3 de marzo de 24", date(2024, time.March, 3)},
		{"month year wins without de", "15 marzo 2026", date(2026, time.March, 1)},
		{"slash format", "15/03/2026", date(2026, time.March, 15)},
		{"iso format", "2026-12-31", date(2026, time.December, 31)},
		{"dotted format month first", "05.03.2026", date(2026, time.May, 3)},
		{"invalid day falls to first", "31/02/2026", date(2026, time.February, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			require.True(t, ok, "expected %q to parse", tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatePassthrough(t *testing.T) {
	ts := time.Date(2026, time.May, 3, 14, 30, 0, 0, time.UTC)
	got, ok := ParseDate(ts)
	require.True(t, ok)
	assert.Equal(t, date(2026, time.May, 3), got)
}

func TestParseDateUnparseable(t *testing.T) {
	for _, value := range []any{nil, "", "   ", "por definir", "hola mundo"} {
		_, ok := ParseDate(value)
		assert.False(t, ok, "value %v should not parse", value)
	}
}
