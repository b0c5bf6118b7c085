// Package economic fetches macroeconomic series from FRED and assesses
// their impact on a single stock given its sector.
package economic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/phuslu/log"

	"equitylens/internal/gateway"
	"equitylens/internal/model"
)

const fredBaseURL = "https://api.stlouisfed.org/fred/series/observations"

// FRED series identifiers.
const (
	seriesGDP          = "GDP"          // quarterly nominal GDP
	seriesGDPPerCapita = "A939RX0Q048SBEA"
	seriesCPI          = "CPIAUCSL" // monthly consumer price index
	seriesUnemployment = "UNRATE"
	seriesFedFunds     = "FEDFUNDS"
	seriesTreasury10Y  = "GS10"
)

// Observation is one dated value of a FRED series.
type Observation struct {
	Date  time.Time
	Value float64
}

// DataSource supplies macroeconomic time series. Implemented by
// FREDClient; a map-backed stub serves tests.
type DataSource interface {
	// Series returns up to limit most recent observations of a series,
	// ascending by date, with unreported periods dropped.
	Series(ctx context.Context, seriesID string, limit int) ([]Observation, error)
}

// FREDClient reads observation series from the FRED REST API.
type FREDClient struct {
	client *http.Client
	apiKey string
}

// NewFREDClient builds a client for the given API key.
func NewFREDClient(apiKey string) *FREDClient {
	return &FREDClient{
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: apiKey,
	}
}

type fredResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// Series implements DataSource against the observations endpoint.
func (c *FREDClient) Series(ctx context.Context, seriesID string, limit int) ([]Observation, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")
	params.Set("sort_order", "desc")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fredBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build FRED request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch FRED series %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch FRED series %s: status %d", seriesID, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read FRED response: %w", err)
	}

	var decoded fredResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode FRED response: %w", err)
	}

	obs := make([]Observation, 0, len(decoded.Observations))
	for _, o := range decoded.Observations {
		if o.Value == "." { // FRED's marker for an unreported period
			continue
		}
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			continue
		}
		obs = append(obs, Observation{Date: d, Value: v})
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	return obs, nil
}

// SnapshotBuilder assembles an EconomicSnapshot from FRED series and the
// market data gateway (VIX and S&P 500). Each input degrades
// independently to nil.
type SnapshotBuilder struct {
	source DataSource
	market gateway.MarketDataGateway
}

// NewSnapshotBuilder wires a macro data source and a market gateway.
// Either may be nil; the corresponding fields stay unknown.
func NewSnapshotBuilder(source DataSource, market gateway.MarketDataGateway) *SnapshotBuilder {
	return &SnapshotBuilder{source: source, market: market}
}

// yoyGrowth computes the year-over-year percent change of the latest
// observation, where span is the number of periods in a year.
func yoyGrowth(obs []Observation, span int) *float64 {
	if len(obs) < span+1 {
		return nil
	}
	base := obs[len(obs)-1-span].Value
	if base == 0 {
		return nil
	}
	return model.Float((obs[len(obs)-1].Value/base - 1) * 100)
}

func latest(obs []Observation) *float64 {
	if len(obs) == 0 {
		return nil
	}
	return model.Float(obs[len(obs)-1].Value)
}

func (b *SnapshotBuilder) series(ctx context.Context, id string, limit int) []Observation {
	if b.source == nil {
		return nil
	}
	obs, err := b.source.Series(ctx, id, limit)
	if err != nil {
		log.Warn().Str("series", id).Err(err).Msg("macro series unavailable")
		return nil
	}
	return obs
}

// Snapshot gathers the latest macro readings. It never fails; series that
// cannot be fetched stay nil.
func (b *SnapshotBuilder) Snapshot(ctx context.Context) model.EconomicSnapshot {
	snap := model.EconomicSnapshot{MarketSentiment: "Data Unavailable"}

	snap.GDPGrowth = yoyGrowth(b.series(ctx, seriesGDP, 20), 4)
	snap.GDPPerCapitaGrowth = yoyGrowth(b.series(ctx, seriesGDPPerCapita, 20), 4)
	snap.InflationRate = yoyGrowth(b.series(ctx, seriesCPI, 24), 12)
	snap.UnemploymentRate = latest(b.series(ctx, seriesUnemployment, 24))
	snap.FedFundsRate = latest(b.series(ctx, seriesFedFunds, 12))
	snap.Treasury10Y = latest(b.series(ctx, seriesTreasury10Y, 12))

	if b.market == nil {
		return snap
	}
	if vix, err := b.market.History(ctx, "^VIX", gateway.Period1Month); err == nil {
		if bar, ok := vix.Last(); ok {
			snap.VIX = model.Float(bar.Close)
			switch {
			case bar.Close > 30:
				snap.MarketSentiment = "Fear"
			case bar.Close < 15:
				snap.MarketSentiment = "Greed"
			default:
				snap.MarketSentiment = "Neutral"
			}
		}
	} else {
		log.Warn().Err(err).Msg("VIX history unavailable")
	}
	if sp, err := b.market.History(ctx, "^GSPC", gateway.Period1Month); err == nil && len(sp) >= 2 {
		first, last := sp[0].Close, sp[len(sp)-1].Close
		if first != 0 {
			snap.SP500MonthlyReturn = model.Float((last/first - 1) * 100)
		}
	}
	return snap
}
