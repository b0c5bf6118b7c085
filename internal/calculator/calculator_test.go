package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"equitylens/internal/model"
)

func TestSMA(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		window  int
		want    float64
		wantErr bool
	}{
		{"exact window", []float64{1, 2, 3}, 3, 2, false},
		{"trailing window", []float64{10, 1, 2, 3}, 3, 2, false},
		{"too short", []float64{1, 2}, 3, 0, true},
		{"empty", nil, 20, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SMA(tt.prices, tt.window)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SMA() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SMA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRSI_MonotonicIncreasing(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := RSI(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All gains, zero losses: the defined edge case pins RSI at 100.
	if rsi != 100.0 {
		t.Errorf("expected RSI 100 for monotonic gains, got %.2f", rsi)
	}
}

func TestRSI_MonotonicDecreasing(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	rsi, err := RSI(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 0.0 {
		t.Errorf("expected RSI 0 for monotonic losses, got %.2f", rsi)
	}
}

func TestRSI_Balanced(t *testing.T) {
	// Alternating +1/-1 deltas: equal average gain and loss, RSI = 50.
	closes := make([]float64, 31)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] + 1
		} else {
			closes[i] = closes[i-1] - 1
		}
	}
	rsi, err := RSI(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(rsi-50) > 1e-9 {
		t.Errorf("expected RSI 50 for balanced series, got %.4f", rsi)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	closes := make([]float64, RSIPeriod) // one short of RSIPeriod+1
	if _, err := RSI(closes); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Constant prices: zero returns, zero volatility.
	flat := []float64{100, 100, 100, 100}
	vol, err := AnnualizedVolatility(flat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vol != 0 {
		t.Errorf("expected zero volatility for flat series, got %v", vol)
	}

	// Alternating ±1% returns have a known sample stddev.
	prices := []float64{100, 101, 99.99, 100.9899}
	vol, err = AnnualizedVolatility(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vol <= 0 {
		t.Errorf("expected positive volatility, got %v", vol)
	}

	if _, err := AnnualizedVolatility([]float64{100, 101}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for two closes, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, 60)
	for i := range bars {
		price := 100 + float64(i)*0.5
		bars[i] = model.PriceBar{Time: start.AddDate(0, 0, i), Close: price, Volume: 1000}
	}
	snap := Snapshot(model.NewPriceSeries(bars))

	if snap.CurrentPrice == nil || *snap.CurrentPrice != 129.5 {
		t.Errorf("unexpected current price: %v", snap.CurrentPrice)
	}
	if snap.MA20 == nil || snap.MA50 == nil || snap.RSI14 == nil || snap.Volatility == nil {
		t.Fatalf("expected all indicators for 60 bars, got %+v", snap)
	}
	if *snap.MA20 <= *snap.MA50 {
		t.Errorf("uptrend should have MA20 > MA50, got %.2f <= %.2f", *snap.MA20, *snap.MA50)
	}
}

func TestSnapshot_ShortSeries(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, 10)
	for i := range bars {
		bars[i] = model.PriceBar{Time: start.AddDate(0, 0, i), Close: 100}
	}
	snap := Snapshot(model.NewPriceSeries(bars))

	if snap.CurrentPrice == nil {
		t.Error("current price should always be present for a non-empty series")
	}
	if snap.MA20 != nil || snap.MA50 != nil || snap.RSI14 != nil {
		t.Errorf("expected nil indicators for 10 bars, got %+v", snap)
	}
}
