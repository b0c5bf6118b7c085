// Package resolver maps free-text company names and tickers to canonical
// market symbols using static lookup tables and provider probing.
package resolver

import (
	"context"
	"strings"
)

// Prober is the existence check a resolver needs from the market-data
// gateway.
type Prober interface {
	ProbeValid(ctx context.Context, symbol string) bool
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Market string `json:"market"`
}

const (
	marketIndia = "India (NSE/BSE)"
	marketUS    = "US (NASDAQ/NYSE)"
)

// Resolver resolves queries against the static company tables, falling
// back to provider probes. It is immutable after construction and safe
// for concurrent use.
type Resolver struct {
	prober Prober
}

// New creates a Resolver backed by the given prober.
func New(prober Prober) *Resolver {
	return &Resolver{prober: prober}
}

// Resolve maps a query to a best-effort symbol. It is total: when nothing
// matches, the uppercased query is returned verbatim and the gateway gets
// to reject it.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	queryUpper := strings.ToUpper(strings.TrimSpace(query))
	queryLower := strings.ToLower(strings.TrimSpace(query))

	// Already a valid symbol?
	if r.prober.ProbeValid(ctx, queryUpper) {
		return queryUpper
	}

	// Exact name match, domestic table first.
	for _, e := range indianCompanies {
		if e.name == queryLower {
			return e.symbol
		}
	}
	for _, e := range usCompanies {
		if e.name == queryLower {
			return e.symbol
		}
	}

	// Substring match in table order, either direction.
	for _, e := range indianCompanies {
		if strings.Contains(e.name, queryLower) || strings.Contains(queryLower, e.name) {
			return e.symbol
		}
	}
	for _, e := range usCompanies {
		if strings.Contains(e.name, queryLower) || strings.Contains(queryLower, e.name) {
			return e.symbol
		}
	}

	// Bare Indian ticker? Probe with exchange suffixes.
	for _, suffix := range indianSuffixes {
		if candidate := queryUpper + suffix; r.prober.ProbeValid(ctx, candidate) {
			return candidate
		}
	}

	return queryUpper
}

// Suggestions returns up to limit autocomplete candidates whose names
// contain the query, domestic entries before US entries, preserving table
// order within each group.
func (r *Resolver) Suggestions(query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = 5
	}
	queryLower := strings.ToLower(strings.TrimSpace(query))
	var out []Suggestion

	for _, e := range indianCompanies {
		if len(out) >= limit {
			break
		}
		if strings.Contains(e.name, queryLower) {
			out = append(out, Suggestion{Name: titleCase(e.name), Symbol: e.symbol, Market: marketIndia})
		}
	}
	for _, e := range usCompanies {
		if len(out) >= limit {
			break
		}
		if strings.Contains(e.name, queryLower) {
			out = append(out, Suggestion{Name: titleCase(e.name), Symbol: e.symbol, Market: marketUS})
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
