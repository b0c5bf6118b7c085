package model

import (
	"sort"
	"time"
)

// PriceBar represents a single daily candlestick bar.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries is a chronologically ascending sequence of bars with no
// duplicate timestamps.
type PriceSeries []PriceBar

// NewPriceSeries sorts the bars ascending by time and drops duplicate
// timestamps, keeping the first occurrence.
func NewPriceSeries(bars []PriceBar) PriceSeries {
	s := make([]PriceBar, len(bars))
	copy(s, bars)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })

	out := s[:0]
	for i, b := range s {
		if i > 0 && b.Time.Equal(s[i-1].Time) {
			continue
		}
		out = append(out, b)
	}
	return PriceSeries(out)
}

// Closes returns the closing prices in chronological order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the most recent bar, or false when the series is empty.
func (s PriceSeries) Last() (PriceBar, bool) {
	if len(s) == 0 {
		return PriceBar{}, false
	}
	return s[len(s)-1], true
}
