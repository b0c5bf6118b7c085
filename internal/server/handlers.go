package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/phuslu/log"

	"equitylens/internal/export"
	"equitylens/internal/gateway"
	"equitylens/internal/model"
)

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter q"})
		return
	}
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, s.analyzer.Suggestions(q, limit))
}

// profileView is the JSON shape of the fundamentals snapshot.
type profileView struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Sector        string   `json:"sector,omitempty"`
	CurrentPrice  *float64 `json:"current_price,omitempty"`
	PreviousClose *float64 `json:"previous_close,omitempty"`
	MarketCap     *float64 `json:"market_cap,omitempty"`
	TrailingPE    *float64 `json:"trailing_pe,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	TrailingEPS   *float64 `json:"trailing_eps,omitempty"`
	BookValue     *float64 `json:"book_value,omitempty"`
	DebtToEquity  *float64 `json:"debt_to_equity,omitempty"`
	ProfitMargin  *float64 `json:"profit_margin,omitempty"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`
}

type factorView struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

type recommendationView struct {
	Action     string       `json:"action"`
	Reason     string       `json:"reason"`
	Score      int          `json:"score"`
	Factors    []factorView `json:"factors"`
	RiskLabel  string       `json:"risk_label"`
	Volatility *float64     `json:"volatility,omitempty"`
}

type compoundingView struct {
	Score    int                 `json:"score"`
	Verdict  string              `json:"verdict"`
	Factors  []string            `json:"factors"`
	Warnings []string            `json:"warnings"`
	Metrics  map[string]*float64 `json:"metrics"`
	Summary  string              `json:"summary"`
}

type economicView struct {
	OverallSentiment   string                  `json:"overall_sentiment"`
	GDPImpact          string                  `json:"gdp_impact"`
	InflationImpact    string                  `json:"inflation_impact"`
	InterestRateImpact string                  `json:"interest_rate_impact"`
	SectorImpact       string                  `json:"sector_impact"`
	Recommendations    []string                `json:"recommendations"`
	Sensitivity        model.SectorSensitivity `json:"sensitivity"`
}

type analyzeResponse struct {
	Query       string              `json:"query"`
	Symbol      string              `json:"symbol"`
	Profile     profileView         `json:"profile"`
	Indicators  map[string]*float64 `json:"indicators"`
	Valuations  map[string]*float64 `json:"valuations"`
	Recommend   recommendationView  `json:"recommendation"`
	Compounding compoundingView     `json:"compounding"`
	Economic    *economicView       `json:"economic,omitempty"`
	GeneratedAt time.Time           `json:"generated_at"`
}

func toAnalyzeResponse(report *model.Report) analyzeResponse {
	resp := analyzeResponse{
		Query:  report.Query,
		Symbol: report.Symbol,
		Indicators: map[string]*float64{
			"current_price":         report.Indicators.CurrentPrice,
			"ma20":                  report.Indicators.MA20,
			"ma50":                  report.Indicators.MA50,
			"rsi14":                 report.Indicators.RSI14,
			"annualized_volatility": report.Indicators.Volatility,
		},
		Valuations: map[string]*float64{
			"dcf":         report.Valuations.DCF,
			"pe_relative": report.Valuations.PERelative,
			"graham":      report.Valuations.Graham,
			"peg":         report.Valuations.PEG,
		},
		Recommend: recommendationView{
			Action:     report.Recommendation.Action,
			Reason:     report.Recommendation.Reason,
			Score:      report.Recommendation.Score,
			RiskLabel:  report.Recommendation.RiskLabel,
			Volatility: report.Recommendation.Volatility,
		},
		Compounding: compoundingView{
			Score:    report.Compounding.Score,
			Verdict:  report.Compounding.Verdict.String(),
			Factors:  report.Compounding.Factors,
			Warnings: report.Compounding.Warnings,
			Metrics:  report.Compounding.Metrics,
			Summary:  report.CompoundingSummary,
		},
		GeneratedAt: report.GeneratedAt,
	}
	for _, f := range report.Recommendation.Factors {
		resp.Recommend.Factors = append(resp.Recommend.Factors, factorView{Name: f.Name, Detail: f.Detail})
	}
	if p := report.Profile; p != nil {
		resp.Profile = profileView{
			Symbol:        p.Symbol,
			Name:          p.Name,
			Sector:        p.Sector,
			CurrentPrice:  p.CurrentPrice,
			PreviousClose: p.PreviousClose,
			MarketCap:     p.MarketCap,
			TrailingPE:    p.TrailingPE,
			DividendYield: p.DividendYield,
			TrailingEPS:   p.TrailingEPS,
			BookValue:     p.BookValue,
			DebtToEquity:  p.DebtToEquity,
			ProfitMargin:  p.ProfitMargin,
			RevenueGrowth: p.RevenueGrowth,
		}
	}
	if e := report.Economic; e != nil {
		resp.Economic = &economicView{
			OverallSentiment:   e.OverallSentiment,
			GDPImpact:          e.GDPImpact,
			InflationImpact:    e.InflationImpact,
			InterestRateImpact: e.InterestRateImpact,
			SectorImpact:       e.SectorImpact,
			Recommendations:    e.Recommendations,
			Sensitivity:        e.Sensitivity,
		}
	}
	return resp
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter q"})
		return
	}
	period := gateway.ParsePeriod(r.URL.Query().Get("period"))

	report, err := s.analyzer.Research(r.Context(), q, period)
	if err != nil {
		log.Warn().Str("query", q).Err(err).Msg("analyze failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyzeResponse(report))
}

// writeCSV sends a table as a CSV attachment.
func writeCSV(w http.ResponseWriter, filename string, table export.Table) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := table.WriteCSV(w); err != nil {
		log.Error().Err(err).Msg("write csv")
	}
}

func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter symbol"})
		return
	}
	period := gateway.ParsePeriod(r.URL.Query().Get("period"))

	series, err := s.market.History(r.Context(), symbol, period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCSV(w, fmt.Sprintf("%s_history.csv", symbol), export.HistoryTable(series))
}

func (s *Server) exportStatement(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		if symbol == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter symbol"})
			return
		}
		statements, err := s.market.Statements(r.Context(), symbol)
		if err != nil {
			writeError(w, err)
			return
		}
		var table model.StatementTable
		switch kind {
		case "income":
			table = statements.Income
		case "balance":
			table = statements.BalanceSheet
		case "cashflow":
			table = statements.CashFlow
		}
		writeCSV(w, fmt.Sprintf("%s_%s.csv", symbol, kind), export.StatementTable(table))
	}
}

func (s *Server) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter symbol"})
		return
	}
	report, err := s.analyzer.Research(r.Context(), symbol, gateway.Period1Year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCSV(w, fmt.Sprintf("%s_summary.csv", symbol), export.SummaryTable(report))
}
