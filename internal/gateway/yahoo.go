package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/phuslu/log"
	"github.com/piquette/finance-go/equity"

	"equitylens/internal/model"
)

// YahooGateway implements MarketDataGateway over the Yahoo Finance public
// API: finance-go for quote snapshots, the v8 chart API for history, and
// the v10 quoteSummary API for fundamentals and statements.
type YahooGateway struct {
	client *http.Client
}

// NewYahooGateway creates a gateway with optional proxy support for the
// hand-rolled endpoints.
func NewYahooGateway(proxyURL string) *YahooGateway {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooGateway{
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (g *YahooGateway) Name() string { return "yahoo" }

// optional converts a provider float to an optional field. Yahoo reports
// absent numerics as zero, so zero maps to unknown.
func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return model.Float(v)
}

func (g *YahooGateway) Profile(_ context.Context, symbol string) (*model.Profile, error) {
	q, err := equity.Get(symbol)
	if err != nil || q == nil || q.Symbol == "" {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, ErrSymbolNotFound)
	}

	p := &model.Profile{
		Symbol:           q.Symbol,
		Name:             q.ShortName,
		CurrentPrice:     optional(q.RegularMarketPrice),
		PreviousClose:    optional(q.RegularMarketPreviousClose),
		MarketCap:        optional(float64(q.MarketCap)),
		TrailingPE:       optional(q.TrailingPE),
		DividendYield:    optional(q.TrailingAnnualDividendYield),
		TrailingEPS:      optional(q.EpsTrailingTwelveMonths),
		BookValue:        optional(q.BookValue),
		Volume:           optional(float64(q.RegularMarketVolume)),
		FiftyTwoWeekHigh: optional(q.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  optional(q.FiftyTwoWeekLow),
	}
	if p.Name == "" {
		p.Name = q.Symbol
	}

	// The quote endpoint lacks sector, leverage, margins, and growth;
	// fill them from quoteSummary and degrade silently when it fails.
	if err := g.fillSummary(symbol, p); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("quote summary unavailable, profile is partial")
	}
	return p, nil
}

// yahooValue is the {raw, fmt} pair quoteSummary wraps numerics in.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile *struct {
				Sector              string `json:"sector"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"summaryProfile"`
			FinancialData *struct {
				TotalRevenue   yahooValue `json:"totalRevenue"`
				DebtToEquity   yahooValue `json:"debtToEquity"`
				ProfitMargins  yahooValue `json:"profitMargins"`
				RevenueGrowth  yahooValue `json:"revenueGrowth"`
				EarningsGrowth yahooValue `json:"earningsGrowth"`
			} `json:"financialData"`
			DefaultKeyStatistics *struct {
				SharesOutstanding yahooValue `json:"sharesOutstanding"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (g *YahooGateway) fillSummary(symbol string, p *model.Profile) error {
	body, err := g.fetch(fmt.Sprintf(
		"https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryProfile,financialData,defaultKeyStatistics",
		url.PathEscape(symbol)))
	if err != nil {
		return err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return fmt.Errorf("decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return ErrDataUnavailable
	}

	r := summary.QuoteSummary.Result[0]
	if r.SummaryProfile != nil {
		p.Sector = r.SummaryProfile.Sector
		p.Summary = r.SummaryProfile.LongBusinessSummary
	}
	if r.FinancialData != nil {
		p.TotalRevenue = r.FinancialData.TotalRevenue.Raw
		p.DebtToEquity = r.FinancialData.DebtToEquity.Raw
		p.ProfitMargin = r.FinancialData.ProfitMargins.Raw
		p.RevenueGrowth = r.FinancialData.RevenueGrowth.Raw
		p.EarningsGrowth = r.FinancialData.EarningsGrowth.Raw
	}
	if r.DefaultKeyStatistics != nil {
		p.SharesOutstanding = r.DefaultKeyStatistics.SharesOutstanding.Raw
	}
	return nil
}

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (g *YahooGateway) History(_ context.Context, symbol string, period Period) (model.PriceSeries, error) {
	body, err := g.fetch(fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), period))
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo history %s: %w", symbol, ErrDataUnavailable)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo history %s: %w", symbol, ErrDataUnavailable)
	}
	qd := result.Indicators.Quote[0]
	bars := make([]model.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(qd.Open) || i >= len(qd.High) || i >= len(qd.Low) || i >= len(qd.Close) || i >= len(qd.Volume) {
			break
		}
		o := toFloat(qd.Open[i])
		h := toFloat(qd.High[i])
		l := toFloat(qd.Low[i])
		c := toFloat(qd.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.PriceBar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(qd.Volume[i])),
		})
	}
	return model.NewPriceSeries(bars), nil
}

// lineKey maps a quoteSummary field name to the canonical display name the
// analysis packages look items up by.
type lineKey struct {
	provider string
	display  string
}

var (
	incomeLines = []lineKey{
		{"totalRevenue", "Total Revenue"},
		{"grossProfit", "Gross Profit"},
		{"operatingIncome", "Operating Income"},
		{"ebit", "EBIT"},
		{"netIncome", "Net Income"},
	}
	balanceLines = []lineKey{
		{"totalAssets", "Total Assets"},
		{"totalLiab", "Total Liabilities"},
		{"totalStockholderEquity", "Stockholders Equity"},
		{"retainedEarnings", "Retained Earnings"},
		{"cash", "Cash"},
	}
	cashFlowLines = []lineKey{
		{"totalCashFromOperatingActivities", "Operating Cash Flow"},
		{"capitalExpenditures", "Capital Expenditures"},
		{"totalCashFromFinancingActivities", "Financing Cash Flow"},
		{"totalCashflowsFromInvestingActivities", "Investing Cash Flow"},
	}
)

type yahooStatements struct {
	QuoteSummary struct {
		Result []struct {
			IncomeStatementHistory *struct {
				IncomeStatementHistory []map[string]yahooValue `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			BalanceSheetHistory *struct {
				BalanceSheetStatements []map[string]yahooValue `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
			CashflowStatementHistory *struct {
				CashflowStatements []map[string]yahooValue `json:"cashflowStatements"`
			} `json:"cashflowStatementHistory"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (g *YahooGateway) Statements(_ context.Context, symbol string) (*model.StatementSet, error) {
	body, err := g.fetch(fmt.Sprintf(
		"https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory",
		url.PathEscape(symbol)))
	if err != nil {
		return nil, err
	}

	var resp yahooStatements
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode statements: %w", err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", resp.QuoteSummary.Error.Description)
	}

	set := &model.StatementSet{}
	if len(resp.QuoteSummary.Result) == 0 {
		return set, nil // provider has no statements, not an error
	}
	r := resp.QuoteSummary.Result[0]
	if r.IncomeStatementHistory != nil {
		set.Income = buildTable(r.IncomeStatementHistory.IncomeStatementHistory, incomeLines)
	}
	if r.BalanceSheetHistory != nil {
		set.BalanceSheet = buildTable(r.BalanceSheetHistory.BalanceSheetStatements, balanceLines)
	}
	if r.CashflowStatementHistory != nil {
		set.CashFlow = buildTable(r.CashflowStatementHistory.CashflowStatements, cashFlowLines)
	}
	return set, nil
}

// buildTable converts per-year statement entries into named line-item
// series with ascending dates. Yahoo returns years most recent first.
func buildTable(entries []map[string]yahooValue, lines []lineKey) model.StatementTable {
	var table model.StatementTable
	for _, key := range lines {
		var points []model.LinePoint
		for _, entry := range entries {
			end, ok := entry["endDate"]
			if !ok || end.Raw == nil {
				continue
			}
			v, ok := entry[key.provider]
			if !ok || v.Raw == nil {
				continue
			}
			points = append(points, model.LinePoint{
				Date:  time.Unix(int64(*end.Raw), 0),
				Value: *v.Raw,
			})
		}
		if len(points) == 0 {
			continue
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
		table.Items = append(table.Items, model.LineItem{Name: key.display, Points: points})
	}
	return table
}

func (g *YahooGateway) ProbeValid(_ context.Context, symbol string) bool {
	q, err := equity.Get(symbol)
	return err == nil && q != nil && q.Symbol != ""
}

func (g *YahooGateway) fetch(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
