package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"

	"AuctionBidder/internal/config"
	"AuctionBidder/internal/history"
	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/recorder"
	"AuctionBidder/internal/report"
	"AuctionBidder/internal/scheduler"
	"AuctionBidder/internal/tournament"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("AuctionBidder starting", "config", cfgPath)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init round history store
	store, err := history.Open(ctx, cfg.HistoryOptions())
	if err != nil {
		log.Fatal("open history store", "driver", cfg.Storage.Driver, "error", err)
	}
	defer store.Close()
	log.Info("history store ready", "driver", cfg.Storage.Driver)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Recorder.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath, log)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", "error", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := tournament.NewRunner(store, cfg.Strategy, cfg.Tournament.Workers, clock.NewClock(), rec, log)

	specs := make([]tournament.Spec, 0, len(cfg.Tournament.Opponents))
	for _, kind := range cfg.Tournament.Opponents {
		specs = append(specs, tournament.Spec{
			Opponent: kind,
			Runs:     cfg.Tournament.Runs,
			Seed:     cfg.Tournament.Seed,
			Quantity: cfg.Auction.Quantity,
			Cash:     cfg.Auction.Cash,
		})
	}
	sched := scheduler.NewScheduler(ctx, runner, specs, log)

	// One-shot benchmark when no schedule is configured
	if cfg.Schedule.Cron == "" {
		summaries := sched.RunNow()
		for _, s := range summaries {
			fmt.Println(report.FormatTournament(s))
		}
		if cfg.Report.SVGPath != "" {
			if err := writeSVG(cfg.Report.SVGPath, summaries); err != nil {
				log.Error("write svg report", "path", cfg.Report.SVGPath, "error", err)
			} else {
				log.Info("svg report written", "path", cfg.Report.SVGPath)
			}
		}
		if len(summaries) < len(specs) {
			log.Error("some tournaments failed", "requested", len(specs), "finished", len(summaries))
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatal("register cron task", "error", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, running benchmark now")
		go sched.RunNow()
	}

	log.Info("AuctionBidder is running. Press Ctrl+C to stop.", "cron", cfg.Schedule.Cron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
}

func writeSVG(path string, summaries []*tournament.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteSVG(f, summaries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
