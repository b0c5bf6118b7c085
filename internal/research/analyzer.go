// Package research runs the full single-security analysis pipeline:
// resolve the query, fetch market data, and fold indicators, valuations,
// the recommendation, and the compounding and macro assessments into one
// report.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"

	"equitylens/internal/calculator"
	"equitylens/internal/compounding"
	"equitylens/internal/economic"
	"equitylens/internal/gateway"
	"equitylens/internal/model"
	"equitylens/internal/recommend"
	"equitylens/internal/resolver"
	"equitylens/internal/valuation"
)

// Macro produces the economy-wide snapshot feeding the impact analysis.
// Satisfied by economic.SnapshotBuilder.
type Macro interface {
	Snapshot(ctx context.Context) model.EconomicSnapshot
}

// Analyzer orchestrates one research query end to end. All analysis is
// pure; the gateway does every piece of I/O.
type Analyzer struct {
	market   gateway.MarketDataGateway
	resolver *resolver.Resolver
	macro    Macro // nil disables the economic section
}

// New builds an Analyzer. macro may be nil when no FRED key is
// configured; reports then omit the economic section.
func New(market gateway.MarketDataGateway, macro Macro) *Analyzer {
	return &Analyzer{
		market:   market,
		resolver: resolver.New(market),
		macro:    macro,
	}
}

// Suggestions exposes resolver autocompletion for the presentation layer.
func (a *Analyzer) Suggestions(query string, limit int) []resolver.Suggestion {
	return a.resolver.Suggestions(query, limit)
}

// Research resolves the query and assembles a full report over the given
// history period. The only error that escapes is an unresolvable symbol;
// every other gap degrades to unknown fields.
func (a *Analyzer) Research(ctx context.Context, query string, period gateway.Period) (*model.Report, error) {
	symbol := a.resolver.Resolve(ctx, query)
	log.Info().Str("query", query).Str("symbol", symbol).Msg("research started")

	profile, err := a.market.Profile(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("profile for %s: %w", symbol, err)
	}

	history, err := a.market.History(ctx, symbol, period)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("price history unavailable")
		history = nil
	}

	statements, err := a.market.Statements(ctx, symbol)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("financial statements unavailable")
		statements = &model.StatementSet{}
	}

	card := compounding.Analyze(profile, statements)

	report := &model.Report{
		Query:              query,
		Symbol:             symbol,
		Profile:            profile,
		History:            history,
		Statements:         statements,
		Indicators:         calculator.Snapshot(history),
		Valuations:         valuation.All(profile, statements.CashFlow),
		Recommendation:     recommend.Score(profile, history),
		Compounding:        card,
		CompoundingSummary: compounding.Summarize(card),
		GeneratedAt:        time.Now().UTC(),
	}

	if a.macro != nil {
		impact := economic.AnalyzeImpact(a.macro.Snapshot(ctx), profile.Sector)
		report.Economic = &impact
	}

	log.Info().
		Str("symbol", symbol).
		Int("score", report.Recommendation.Score).
		Str("action", report.Recommendation.Action).
		Msg("research complete")
	return report, nil
}
