// Package metrics serves the dashboard's chart and KPI data. The numbers
// are fixtures; a real analytics pipeline would sit behind the same
// Provider interface.
package metrics

import (
	appErrors "incubator-admin/pkg/errors"
)

// Point is one chart sample.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series names the two time series the dashboard charts.
type Series string

const (
	SeriesRevenue     Series = "revenue"
	SeriesSuccessRate Series = "success_rate"
)

// Periods accepted by GetSeries, matching the dashboard's range filter.
var Periods = []string{"1M", "3M", "6M", "9M", "12M"}

// KPI is one headline card on the dashboard.
type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Distribution is one slice of the machine-type pie chart.
type Distribution struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Provider supplies dashboard analytics.
type Provider interface {
	GetSeries(series Series, period string) ([]Point, error)
	GetKPIs() []KPI
	GetMachineDistribution() []Distribution
}

// FixtureProvider serves the demo dataset.
type FixtureProvider struct{}

func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{}
}

var revenueSeries = map[string][]Point{
	"1M": {
		{Label: "W1", Value: 18000000},
		{Label: "W2", Value: 21000000},
		{Label: "W3", Value: 19000000},
		{Label: "W4", Value: 23000000},
	},
	"3M": {
		{Label: "T1", Value: 45000000},
		{Label: "T2", Value: 48000000},
		{Label: "T3", Value: 52000000},
	},
	"6M": {
		{Label: "T1", Value: 45000000},
		{Label: "T2", Value: 52000000},
		{Label: "T3", Value: 48000000},
		{Label: "T4", Value: 61000000},
		{Label: "T5", Value: 55000000},
		{Label: "T6", Value: 67000000},
	},
	"9M": {
		{Label: "T1", Value: 45000000},
		{Label: "T2", Value: 52000000},
		{Label: "T3", Value: 48000000},
		{Label: "T4", Value: 61000000},
		{Label: "T5", Value: 55000000},
		{Label: "T6", Value: 67000000},
		{Label: "T7", Value: 58000000},
		{Label: "T8", Value: 64000000},
		{Label: "T9", Value: 72000000},
	},
	"12M": {
		{Label: "T1", Value: 45000000},
		{Label: "T2", Value: 52000000},
		{Label: "T3", Value: 48000000},
		{Label: "T4", Value: 61000000},
		{Label: "T5", Value: 55000000},
		{Label: "T6", Value: 67000000},
		{Label: "T7", Value: 58000000},
		{Label: "T8", Value: 64000000},
		{Label: "T9", Value: 72000000},
		{Label: "T10", Value: 68000000},
		{Label: "T11", Value: 75000000},
		{Label: "T12", Value: 82000000},
	},
}

var successRateSeries = map[string][]Point{
	"1M": {
		{Label: "W1", Value: 88},
		{Label: "W2", Value: 90},
		{Label: "W3", Value: 89},
		{Label: "W4", Value: 91},
	},
	"3M": {
		{Label: "T1", Value: 87},
		{Label: "T2", Value: 89},
		{Label: "T3", Value: 90},
	},
	"6M": {
		{Label: "T1", Value: 85},
		{Label: "T2", Value: 88},
		{Label: "T3", Value: 90},
		{Label: "T4", Value: 87},
		{Label: "T5", Value: 92},
		{Label: "T6", Value: 91},
	},
	"9M": {
		{Label: "T1", Value: 85},
		{Label: "T2", Value: 88},
		{Label: "T3", Value: 90},
		{Label: "T4", Value: 87},
		{Label: "T5", Value: 92},
		{Label: "T6", Value: 91},
		{Label: "T7", Value: 89},
		{Label: "T8", Value: 93},
		{Label: "T9", Value: 94},
	},
	"12M": {
		{Label: "T1", Value: 85},
		{Label: "T2", Value: 88},
		{Label: "T3", Value: 90},
		{Label: "T4", Value: 87},
		{Label: "T5", Value: 92},
		{Label: "T6", Value: 91},
		{Label: "T7", Value: 89},
		{Label: "T8", Value: 93},
		{Label: "T9", Value: 94},
		{Label: "T10", Value: 91},
		{Label: "T11", Value: 95},
		{Label: "T12", Value: 93},
	},
}

func (p *FixtureProvider) GetSeries(series Series, period string) ([]Point, error) {
	var source map[string][]Point
	switch series {
	case SeriesRevenue:
		source = revenueSeries
	case SeriesSuccessRate:
		source = successRateSeries
	default:
		return nil, appErrors.ErrUnknownSeries
	}

	points, ok := source[period]
	if !ok {
		return nil, appErrors.ErrUnknownSeries
	}

	out := make([]Point, len(points))
	copy(out, points)
	return out, nil
}

func (p *FixtureProvider) GetKPIs() []KPI {
	return []KPI{
		{Title: "Tổng Máy Đã Bán", Value: "335"},
		{Title: "Tổng Doanh Thu", Value: "328M"},
		{Title: "User Hoạt Động", Value: "248"},
		{Title: "Thiết Bị Lỗi", Value: "12"},
	}
}

func (p *FixtureProvider) GetMachineDistribution() []Distribution {
	return []Distribution{
		{Name: "50 trứng", Value: 120, Color: "#3b82f6"},
		{Name: "100 trứng", Value: 85, Color: "#10b981"},
		{Name: "200 trứng", Value: 65, Color: "#f59e0b"},
		{Name: "500 trứng", Value: 40, Color: "#ef4444"},
		{Name: "1000 trứng", Value: 25, Color: "#8b5cf6"},
	}
}
