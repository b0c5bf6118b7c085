package notifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equitylens/internal/model"
)

func digestReport(symbol, action string, score int) *model.Report {
	return &model.Report{
		Symbol: symbol,
		Recommendation: model.Recommendation{
			Action:    action,
			Score:     score,
			RiskLabel: "Low",
		},
	}
}

func TestFormatWatchlistDigestFailuresSorted(t *testing.T) {
	reports := []*model.Report{digestReport("AAPL", "BUY", 3)}
	failures := map[string]error{
		"ZOMATO.NS": errors.New("profile unavailable"),
		"INFY.NS":   errors.New("profile unavailable"),
		"MSFT":      errors.New("profile unavailable"),
	}

	got := FormatWatchlistDigest(reports, failures)

	// Same message on every run regardless of map iteration order.
	assert.Equal(t, got, FormatWatchlistDigest(reports, failures))

	iInfy := strings.Index(got, "INFY.NS")
	iMsft := strings.Index(got, "MSFT")
	iZomato := strings.Index(got, "ZOMATO.NS")
	require.True(t, iInfy >= 0 && iMsft >= 0 && iZomato >= 0)
	assert.Less(t, iInfy, iMsft)
	assert.Less(t, iMsft, iZomato)
}

func TestFormatWatchlistDigest(t *testing.T) {
	got := FormatWatchlistDigest([]*model.Report{
		digestReport("AAPL", "STRONG BUY", 8),
		digestReport("TCS.NS", "HOLD", 1),
	}, nil)

	assert.Contains(t, got, "Watchlist Digest")
	assert.Contains(t, got, "AAPL: STRONG BUY (score +8, risk Low)")
	assert.Contains(t, got, "TCS.NS: HOLD (score +1, risk Low)")
	assert.NotContains(t, got, "Failed")
}

func TestFormatReport(t *testing.T) {
	report := &model.Report{
		Symbol: "AAPL",
		Profile: &model.Profile{
			Symbol:        "AAPL",
			Name:          "Apple Inc.",
			CurrentPrice:  model.Float(190),
			TrailingPE:    model.Float(29),
			DividendYield: model.Float(0.005),
		},
		Recommendation: model.Recommendation{
			Action:    "BUY",
			Reason:    "Positive outlook based on multiple factors",
			Score:     3,
			RiskLabel: "Moderate",
			Factors: []model.Factor{
				{Name: "Valuation (P/E)", Detail: "Fairly valued (P/E 15-25)"},
			},
		},
		Valuations:         model.Valuations{DCF: model.Float(210.5)},
		Compounding:        model.ScoreCard{Score: 7, Verdict: model.Yes},
		CompoundingSummary: "Strong compounding characteristics - company effectively reinvests profits for growth",
	}

	got := FormatReport(report)
	assert.Contains(t, got, "Apple Inc. (AAPL)")
	assert.Contains(t, got, "Price: 190.00")
	assert.Contains(t, got, "Yield: 0.50%")
	assert.Contains(t, got, "BUY</b> (score +3, risk Moderate)")
	assert.Contains(t, got, "Fairly valued (P/E 15-25)")
	assert.Contains(t, got, "DCF: 210.50")
	assert.Contains(t, got, "Graham: n/a")
	assert.Contains(t, got, "Compounding: Yes (score 7/10)")
	assert.NotContains(t, got, "Macro sentiment")
}
