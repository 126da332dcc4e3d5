package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		min  float64
		max  float64
		unit string
	}{
		{name: "chicken temperature", min: 37.5, max: 38, unit: "°C"},
		{name: "duck temperature", min: 37, max: 37.5, unit: "°C"},
		{name: "humidity", min: 55, max: 65, unit: "%"},
		{name: "ostrich humidity", min: 25, max: 30, unit: "%"},
		{name: "decimal both ends", min: 36.25, max: 36.75, unit: "°C"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			display := FormatRange(tc.min, tc.max, tc.unit)
			min, max, err := ParseRange(display)
			require.NoError(t, err)
			assert.Equal(t, tc.min, min)
			assert.Equal(t, tc.max, max)
		})
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "37.5-38°C", FormatRange(37.5, 38, "°C"))
	assert.Equal(t, "55-65%", FormatRange(55, 65, "%"))
}

func TestParseRange(t *testing.T) {
	min, max, err := ParseRange("37.5-38°C")
	require.NoError(t, err)
	assert.Equal(t, 37.5, min)
	assert.Equal(t, 38.0, max)

	min, max, err = ParseRange("55-65%")
	require.NoError(t, err)
	assert.Equal(t, 55.0, min)
	assert.Equal(t, 65.0, max)

	// Only the first pair is consumed.
	min, max, err = ParseRange("28-30 ngày")
	require.NoError(t, err)
	assert.Equal(t, 28.0, min)
	assert.Equal(t, 30.0, max)

	_, _, err = ParseRange("không có số")
	assert.Error(t, err)
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "21 ngày", FormatScalar(21, UnitDays))
	assert.Equal(t, "2 giờ", FormatScalar(2, UnitHours))
	assert.Equal(t, "1.5 giờ", FormatScalar(1.5, UnitHours))

	v, err := ParseScalar("21 ngày")
	require.NoError(t, err)
	assert.Equal(t, 21.0, v)

	v, err = ParseScalar("1.5 giờ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = ParseScalar("chưa đặt")
	assert.Error(t, err)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "5.200.000 ₫", FormatVND(5200000))
	assert.Equal(t, "10.400.000 ₫", FormatVND(10400000))
	assert.Equal(t, "500 ₫", FormatVND(500))
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "-3.120.000 ₫", FormatVND(-3120000))
}
