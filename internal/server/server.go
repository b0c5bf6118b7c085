// Package server exposes the research pipeline over HTTP: JSON endpoints
// for autocomplete and analysis, CSV endpoints for tabular export.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phuslu/log"

	"equitylens/internal/gateway"
	"equitylens/internal/research"
)

// Server serves the research API.
type Server struct {
	analyzer *research.Analyzer
	market   gateway.MarketDataGateway
	httpSrv  *http.Server
}

// New builds the server with its routes.
func New(addr string, analyzer *research.Analyzer, market gateway.MarketDataGateway) *Server {
	s := &Server{analyzer: analyzer, market: market}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes configures all HTTP routes.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/suggest", s.handleSuggest)
	mux.HandleFunc("GET /api/analyze", s.handleAnalyze)

	mux.HandleFunc("GET /api/export/history", s.handleExportHistory)
	mux.HandleFunc("GET /api/export/income", s.exportStatement("income"))
	mux.HandleFunc("GET /api/export/balance", s.exportStatement("balance"))
	mux.HandleFunc("GET /api/export/cashflow", s.exportStatement("cashflow"))
	mux.HandleFunc("GET /api/export/summary", s.handleExportSummary)

	return mux
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.Info().Str("addr", s.httpSrv.Addr).Msg("http server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// writeJSON renders v with the proper content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps gateway sentinels to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateway.ErrSymbolNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "symbol not found; try a company name or a valid ticker"})
	case errors.Is(err, gateway.ErrDataUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "market data temporarily unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "provider": s.market.Name()})
}
