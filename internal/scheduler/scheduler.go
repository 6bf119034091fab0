package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/report"
	"AuctionBidder/internal/tournament"
)

// Runner plays one tournament. *tournament.Runner satisfies it.
type Runner interface {
	Run(ctx context.Context, spec tournament.Spec) (*tournament.Summary, error)
}

// Scheduler runs the benchmark tournaments on a cron schedule.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
	Specs  []tournament.Spec
	Log    logger.Logger
	Ctx    context.Context

	mu   sync.Mutex
	last []*tournament.Summary
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner Runner, specs []tournament.Spec, log logger.Logger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Specs:  specs,
		Log:    log,
		Ctx:    ctx,
	}
}

// Register adds the benchmark task under the given cron expression (with seconds).
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.benchmarkTask); err != nil {
		return fmt.Errorf("register benchmark task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started", "entries", len(s.Cron.Entries()))
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunNow plays every configured tournament immediately and returns the summaries.
func (s *Scheduler) RunNow() []*tournament.Summary {
	return s.benchmark()
}

// Last returns the summaries of the most recent benchmark.
func (s *Scheduler) Last() []*tournament.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) benchmarkTask() {
	s.benchmark()
}

func (s *Scheduler) benchmark() []*tournament.Summary {
	s.Log.Info("running benchmark", "tournaments", len(s.Specs))
	summaries := make([]*tournament.Summary, 0, len(s.Specs))
	for _, spec := range s.Specs {
		if err := s.Ctx.Err(); err != nil {
			s.Log.Warn("benchmark interrupted", "error", err)
			break
		}
		summary, err := s.Runner.Run(s.Ctx, spec)
		if err != nil {
			s.Log.Error("tournament failed", "opponent", spec.Opponent, "error", err)
			continue
		}
		s.Log.Info("tournament report", "opponent", spec.Opponent, "report", report.FormatTournament(summary))
		summaries = append(summaries, summary)
	}

	s.mu.Lock()
	s.last = summaries
	s.mu.Unlock()
	return summaries
}
