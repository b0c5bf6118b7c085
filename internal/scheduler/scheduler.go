// Package scheduler runs the periodic watchlist refresh and answers
// Telegram chat commands.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/phuslu/log"
	"github.com/robfig/cron/v3"

	"equitylens/internal/gateway"
	"equitylens/internal/model"
	"equitylens/internal/notifier"
	"equitylens/internal/research"
)

// Scheduler manages the cron-driven watchlist digest.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *research.Analyzer
	Notifier  *notifier.TelegramNotifier
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a Scheduler over the given watchlist.
func NewScheduler(ctx context.Context, analyzer *research.Analyzer, tn *notifier.TelegramNotifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  analyzer,
		Notifier:  tn,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register wires the watchlist refresh to the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register watchlist refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Strs("watchlist", s.Watchlist).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunRefreshNow executes the watchlist refresh immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Info().Int("symbols", len(s.Watchlist)).Msg("running watchlist refresh")

	var reports []*model.Report
	failures := map[string]error{}
	for _, symbol := range s.Watchlist {
		report, err := s.Analyzer.Research(s.Ctx, symbol, gateway.Period1Year)
		if err != nil {
			log.Error().Str("symbol", symbol).Err(err).Msg("watchlist research failed")
			failures[symbol] = err
			continue
		}
		reports = append(reports, report)
	}
	if len(reports) == 0 && len(failures) == 0 {
		return
	}
	s.trySend(notifier.FormatWatchlistDigest(reports, failures))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch {
	case command == "/watchlist":
		s.refreshTask()
		return ""
	case strings.HasPrefix(command, "/analyze "):
		query := strings.TrimSpace(strings.TrimPrefix(command, "/analyze "))
		report, err := s.Analyzer.Research(s.Ctx, query, gateway.Period1Year)
		if err != nil {
			return fmt.Sprintf("❌ %q: %v", query, err)
		}
		return notifier.FormatReport(report)
	default:
		return "Commands:\n• /analyze <name or symbol>\n• /watchlist"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
