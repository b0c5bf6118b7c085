package compounding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equitylens/internal/model"
)

func annualPoints(values ...float64) []model.LinePoint {
	points := make([]model.LinePoint, len(values))
	for i, v := range values {
		points[i] = model.LinePoint{
			Date:  time.Date(2020+i, 12, 31, 0, 0, 0, 0, time.UTC),
			Value: v,
		}
	}
	return points
}

// strongStatements describes a textbook compounder: revenue and profit
// growing double digits with equity roughly flat.
func strongStatements() *model.StatementSet {
	return &model.StatementSet{
		Income: model.StatementTable{Items: []model.LineItem{
			{Name: "Total Revenue", Points: annualPoints(100e9, 112e9, 125e9, 140e9)},
			{Name: "Net Income", Points: annualPoints(20e9, 24e9, 29e9, 35e9)},
		}},
		BalanceSheet: model.StatementTable{Items: []model.LineItem{
			{Name: "Stockholders Equity", Points: annualPoints(80e9, 85e9, 90e9, 95e9)},
			{Name: "Retained Earnings", Points: annualPoints(40e9, 48e9, 58e9, 70e9)},
		}},
		CashFlow: model.StatementTable{},
	}
}

func TestAnalyzeStrongCompounder(t *testing.T) {
	profile := &model.Profile{
		DebtToEquity: model.Float(0.2),
		ProfitMargin: model.Float(0.22),
	}
	card := Analyze(profile, strongStatements())

	// 2 (revenue >5%) + 3 (profit >10%) + 2 (ROE >15%) + 1 (retained
	// earnings >5%) + 1 (low debt) + 1 (high margin) = 10.
	assert.Equal(t, 10, card.Score)
	assert.Equal(t, model.Yes, card.Verdict)
	assert.Empty(t, card.Warnings)

	require.NotNil(t, card.Metric("revenue_growth"))
	assert.Greater(t, *card.Metric("revenue_growth"), 5.0)
	require.NotNil(t, card.Metric("roe"))
	assert.Greater(t, *card.Metric("roe"), 15.0)

	assert.Equal(t,
		"Strong compounding characteristics - company effectively reinvests profits for growth",
		Summarize(card))
}

func TestAnalyzeEmptyStatements(t *testing.T) {
	for _, statements := range []*model.StatementSet{nil, {}} {
		card := Analyze(&model.Profile{}, statements)

		assert.Equal(t, 0, card.Score)
		assert.Equal(t, model.Unknown, card.Verdict)
		assert.Equal(t, []string{"Insufficient financial data for compounding analysis"}, card.Warnings)
		assert.Empty(t, card.Factors)
		assert.Nil(t, card.Metric("revenue_growth"))
		assert.Equal(t,
			"Unable to determine compounding quality due to insufficient data",
			Summarize(card))
	}
}

func TestAnalyzeDecliningBusiness(t *testing.T) {
	statements := &model.StatementSet{
		Income: model.StatementTable{Items: []model.LineItem{
			{Name: "Total Revenue", Points: annualPoints(140e9, 125e9, 110e9, 100e9)},
			{Name: "Net Income", Points: annualPoints(20e9, 15e9, 10e9, 5e9)},
		}},
		BalanceSheet: model.StatementTable{Items: []model.LineItem{
			{Name: "Retained Earnings", Points: annualPoints(70e9, 60e9, 50e9)},
		}},
	}
	profile := &model.Profile{DebtToEquity: model.Float(1.8)}

	card := Analyze(profile, statements)

	assert.Equal(t, 0, card.Score)
	assert.Equal(t, model.No, card.Verdict)
	assert.Equal(t, []string{
		"Declining revenue trend",
		"Declining profitability",
		"Declining retained earnings",
		"High debt levels may limit growth",
	}, card.Warnings)
	assert.Equal(t,
		"Weak compounding profile - limited evidence of effective profit reinvestment",
		Summarize(card))
}

func TestAnalyzeAliasFallbacks(t *testing.T) {
	statements := &model.StatementSet{
		Income: model.StatementTable{Items: []model.LineItem{
			{Name: "Net Income Common Stockholders", Points: annualPoints(10e9, 12e9, 15e9)},
		}},
		BalanceSheet: model.StatementTable{Items: []model.LineItem{
			{Name: "Total Equity", Points: annualPoints(50e9, 52e9, 54e9)},
		}},
	}
	card := Analyze(&model.Profile{}, statements)

	require.NotNil(t, card.Metric("profit_growth"))
	require.NotNil(t, card.Metric("roe"))
	assert.Greater(t, card.Score, 0)
}

func TestAnalyzeROERequiresCommonPeriods(t *testing.T) {
	statements := &model.StatementSet{
		Income: model.StatementTable{Items: []model.LineItem{
			{Name: "Net Income", Points: annualPoints(10e9, 12e9, 15e9)},
		}},
		BalanceSheet: model.StatementTable{Items: []model.LineItem{
			// Only one period overlaps with income dates.
			{Name: "Stockholders Equity", Points: []model.LinePoint{
				{Date: time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), Value: 50e9},
			}},
		}},
	}
	card := Analyze(&model.Profile{}, statements)
	assert.Nil(t, card.Metric("roe"))
}

func TestScoreBounds(t *testing.T) {
	profiles := []*model.Profile{
		{},
		{DebtToEquity: model.Float(0.1), ProfitMargin: model.Float(0.30)},
		{DebtToEquity: model.Float(2.0), ProfitMargin: model.Float(0.01)},
	}
	sets := []*model.StatementSet{strongStatements(), {
		Income: model.StatementTable{Items: []model.LineItem{
			{Name: "Total Revenue", Points: annualPoints(100, 90, 80)},
		}},
	}}
	for _, p := range profiles {
		for _, s := range sets {
			card := Analyze(p, s)
			assert.GreaterOrEqual(t, card.Score, 0)
			assert.LessOrEqual(t, card.Score, 10)
			if card.Verdict == model.Yes {
				assert.GreaterOrEqual(t, card.Score, compoundingThreshold)
			}
		}
	}
}
