package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "incubator-admin/pkg/errors"
)

func TestGetSeries(t *testing.T) {
	p := NewFixtureProvider()

	for _, period := range Periods {
		revenue, err := p.GetSeries(SeriesRevenue, period)
		require.NoError(t, err, period)
		assert.NotEmpty(t, revenue)

		rate, err := p.GetSeries(SeriesSuccessRate, period)
		require.NoError(t, err, period)
		assert.Len(t, rate, len(revenue), "both charts share the x axis for %s", period)
	}

	twelve, err := p.GetSeries(SeriesRevenue, "12M")
	require.NoError(t, err)
	require.Len(t, twelve, 12)
	assert.Equal(t, "T12", twelve[11].Label)
	assert.Equal(t, 82000000.0, twelve[11].Value)
}

func TestGetSeriesUnknown(t *testing.T) {
	p := NewFixtureProvider()

	_, err := p.GetSeries(SeriesRevenue, "24M")
	assert.ErrorIs(t, err, appErrors.ErrUnknownSeries)

	_, err = p.GetSeries("conversion", "1M")
	assert.ErrorIs(t, err, appErrors.ErrUnknownSeries)
}

func TestFixtureProviderCopiesPoints(t *testing.T) {
	p := NewFixtureProvider()

	first, err := p.GetSeries(SeriesRevenue, "1M")
	require.NoError(t, err)
	first[0].Value = -1

	again, err := p.GetSeries(SeriesRevenue, "1M")
	require.NoError(t, err)
	assert.Equal(t, 18000000.0, again[0].Value)
}
