package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYear(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "first day of fiscal year",
			date:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: "2425",
		},
		{
			name:     "last day of fiscal year",
			date:     time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
			expected: "2425",
		},
		{
			name:     "mid fiscal year before calendar year end",
			date:     time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
			expected: "2425",
		},
		{
			name:     "mid fiscal year after calendar year end",
			date:     time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
			expected: "2425",
		},
		{
			name:     "next fiscal year",
			date:     time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: "2526",
		},
		{
			name:     "decade boundary",
			date:     time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "2930",
		},
		{
			name:     "century wrap",
			date:     time.Date(2099, time.June, 1, 0, 0, 0, 0, time.UTC),
			expected: "9900",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FiscalYear(tc.date))
		})
	}
}

func TestFiscalYearShort(t *testing.T) {
	assert.Equal(t, "24", FiscalYearShort(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "24", FiscalYearShort(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25", FiscalYearShort(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHexMonth(t *testing.T) {
	expected := map[int]string{
		1: "1", 2: "2", 3: "3", 4: "4", 5: "5", 6: "6",
		7: "7", 8: "8", 9: "9", 10: "A", 11: "B", 12: "C",
	}

	for month, want := range expected {
		got, err := HexMonth(month)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := HexMonth(0)
	assert.Error(t, err)

	_, err = HexMonth(13)
	assert.Error(t, err)
}
