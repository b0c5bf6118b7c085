package economic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equitylens/internal/gateway"
)

// stubSource serves canned observation series.
type stubSource struct {
	series map[string][]Observation
}

func (s *stubSource) Series(_ context.Context, id string, _ int) ([]Observation, error) {
	obs, ok := s.series[id]
	if !ok {
		return nil, errors.New("series not found")
	}
	return obs, nil
}

func monthly(values ...float64) []Observation {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := make([]Observation, len(values))
	for i, v := range values {
		obs[i] = Observation{Date: start.AddDate(0, i, 0), Value: v}
	}
	return obs
}

func quarterly(values ...float64) []Observation {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := make([]Observation, len(values))
	for i, v := range values {
		obs[i] = Observation{Date: start.AddDate(0, 3*i, 0), Value: v}
	}
	return obs
}

func TestSnapshotFromSeries(t *testing.T) {
	source := &stubSource{series: map[string][]Observation{
		seriesGDP:          quarterly(100, 101, 102, 103, 104, 105),
		seriesCPI:          monthly(300, 301, 302, 303, 304, 305, 306, 307, 308, 309, 310, 311, 312),
		seriesUnemployment: monthly(3.9, 3.8, 3.7),
		seriesFedFunds:     monthly(5.25, 5.25, 5.00),
		seriesTreasury10Y:  monthly(4.1, 4.2),
	}}
	snap := NewSnapshotBuilder(source, nil).Snapshot(context.Background())

	require.NotNil(t, snap.GDPGrowth)
	assert.InDelta(t, (105.0/101.0-1)*100, *snap.GDPGrowth, 1e-9)

	require.NotNil(t, snap.InflationRate)
	assert.InDelta(t, (312.0/300.0-1)*100, *snap.InflationRate, 1e-9)

	require.NotNil(t, snap.UnemploymentRate)
	assert.InDelta(t, 3.7, *snap.UnemploymentRate, 1e-9)
	require.NotNil(t, snap.FedFundsRate)
	assert.InDelta(t, 5.00, *snap.FedFundsRate, 1e-9)
	require.NotNil(t, snap.Treasury10Y)
	assert.InDelta(t, 4.2, *snap.Treasury10Y, 1e-9)

	// GDP per capita series missing: stays unknown.
	assert.Nil(t, snap.GDPPerCapitaGrowth)
	// No market gateway wired.
	assert.Nil(t, snap.VIX)
	assert.Equal(t, "Data Unavailable", snap.MarketSentiment)
}

func TestSnapshotShortSeries(t *testing.T) {
	source := &stubSource{series: map[string][]Observation{
		seriesGDP: quarterly(100, 101), // too short for YoY
	}}
	snap := NewSnapshotBuilder(source, nil).Snapshot(context.Background())
	assert.Nil(t, snap.GDPGrowth)
}

func TestSnapshotMarketSentiment(t *testing.T) {
	tests := []struct {
		vix       float64
		sentiment string
	}{
		{35, "Fear"},
		{20, "Neutral"},
		{12, "Greed"},
	}
	for _, tc := range tests {
		market := gateway.NewMockGateway()
		market.Histories["^VIX"] = gateway.GenerateBars(tc.vix, tc.vix, 5)
		market.Histories["^GSPC"] = gateway.GenerateBars(5000, 5100, 21)

		snap := NewSnapshotBuilder(&stubSource{}, market).Snapshot(context.Background())

		require.NotNil(t, snap.VIX, "vix %.0f", tc.vix)
		assert.Equal(t, tc.sentiment, snap.MarketSentiment)
		require.NotNil(t, snap.SP500MonthlyReturn)
		assert.InDelta(t, 2.0, *snap.SP500MonthlyReturn, 0.01)
	}
}

func TestYoYGrowth(t *testing.T) {
	assert.Nil(t, yoyGrowth(nil, 4))
	assert.Nil(t, yoyGrowth(quarterly(1, 2, 3, 4), 4))

	got := yoyGrowth(quarterly(100, 0, 0, 0, 110), 4)
	require.NotNil(t, got)
	assert.InDelta(t, 10, *got, 1e-9)
}
