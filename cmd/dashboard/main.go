package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"

	"equitylens/internal/config"
	"equitylens/internal/economic"
	"equitylens/internal/gateway"
	"equitylens/internal/notifier"
	"equitylens/internal/research"
	"equitylens/internal/scheduler"
	"equitylens/internal/server"
)

func main() {
	log.DefaultLogger = log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: time.RFC3339,
		Writer:     &log.ConsoleWriter{ColorOutput: true},
	}
	log.Info().Msg("equitylens starting")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Init market data gateway
	market := gateway.NewYahooGateway(cfg.Proxy)
	log.Info().Str("provider", market.Name()).Msg("market data gateway ready")

	// Init macro snapshot builder when a FRED key is configured
	var macro research.Macro
	if cfg.FRED.APIKey != "" {
		macro = economic.NewSnapshotBuilder(economic.NewFREDClient(cfg.FRED.APIKey), market)
		log.Info().Msg("economic analysis enabled")
	}

	analyzer := research.New(market, macro)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional watchlist digest over Telegram
	if len(cfg.Watchlist.Symbols) > 0 {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		sched := scheduler.NewScheduler(ctx, analyzer, tn, cfg.Watchlist.Symbols)
		if err := sched.Register(cfg.Watchlist.RefreshCron); err != nil {
			log.Fatal().Err(err).Msg("register watchlist refresh")
		}
		sched.Start()
		defer sched.Stop()

		go tn.StartPolling(ctx, sched.HandleCommand)

		if os.Getenv("RUN_ON_START") == "true" {
			log.Info().Msg("RUN_ON_START enabled, refreshing watchlist now")
			go sched.RunRefreshNow()
		}
	}

	// HTTP API
	srv := server.New(cfg.Server.Addr, analyzer, market)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("equitylens stopped")
}
