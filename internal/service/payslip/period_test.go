package payslip

import (
	"errors"
	"testing"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod_WholeMonth(t *testing.T) {
	p, err := ResolvePeriod("June 2025")
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.June, 1), p.Start)
	assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC), p.End)
	assert.Equal(t, 30, p.TotalCalendarDays())
}

func TestResolvePeriod_CustomCycle(t *testing.T) {
	p, err := ResolvePeriod("21 January 2026 to 20 February 2026")
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.January, 21), p.Start)
	assert.Equal(t, time.Date(2026, time.February, 20, 23, 59, 59, 0, time.UTC), p.End)
	assert.Equal(t, 31, p.TotalCalendarDays())
}

func TestResolvePeriod_TrimsWhitespace(t *testing.T) {
	p, err := ResolvePeriod("  March 2026  ")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 1), p.Start)
}

func TestResolvePeriod_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"empty", ""},
		{"garbage", "not a period"},
		{"year only", "2025"},
		{"abbreviated month", "Jun 2025"},
		{"abbreviated cycle", "1 Jun 2025 to 30 Jun 2025"},
		{"half a cycle", "21 January 2026 to "},
		{"end before start", "20 February 2026 to 21 January 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.label)
			require.Error(t, err)
			assert.True(t, errors.Is(err, payroll.ErrInvalidPeriodFormat), "got %v", err)
		})
	}
}

func TestSalaryPeriod_LabelRoundTrip(t *testing.T) {
	for _, label := range []string{
		"June 2025",
		"February 2024", // leap month
		"21 January 2026 to 20 February 2026",
		"5 March 2026 to 4 April 2026",
	} {
		p, err := ResolvePeriod(label)
		require.NoError(t, err)
		assert.Equal(t, label, p.Label())
	}
}

func TestSalaryPeriod_Contains(t *testing.T) {
	p, err := ResolvePeriod("June 2025")
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2025, time.June, 1)))
	assert.True(t, p.Contains(at(date(2025, time.June, 30), 23, 59)))
	assert.False(t, p.Contains(date(2025, time.May, 31)))
	assert.False(t, p.Contains(date(2025, time.July, 1)))
}

func TestSalaryPeriod_Days(t *testing.T) {
	p, err := ResolvePeriod("February 2024")
	require.NoError(t, err)

	days := p.Days()
	require.Len(t, days, 29)
	assert.Equal(t, date(2024, time.February, 1), days[0])
	assert.Equal(t, date(2024, time.February, 29), days[28])
}
