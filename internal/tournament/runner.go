package tournament

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/workpool"
	"github.com/google/uuid"

	"AuctionBidder/internal/auction"
	"AuctionBidder/internal/bidder"
	"AuctionBidder/internal/history"
	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/opponent"
	"AuctionBidder/internal/recorder"
	"AuctionBidder/internal/strategy"
)

// AdaptiveName is the participant name of the strategy-driven bidder.
const AdaptiveName = "adaptive"

// Spec describes a batch of auctions against one opponent kind.
type Spec struct {
	Opponent string
	Runs     int
	Seed     int64
	Quantity int
	Cash     int
}

// Outcome is one auction of the batch.
type Outcome struct {
	Run    int
	Seed   int64
	Result *auction.Result
}

// Summary aggregates a finished batch. Outcomes are in run order.
type Summary struct {
	ID       string
	Spec     Spec
	Outcomes []Outcome
	Wins     int
	Losses   int
	Draws    int
	WinRate  float64
	Quantity Stat // adaptive bidder's final quantity
	Cash     Stat // adaptive bidder's final remaining cash
	Duration time.Duration
}

// Runner plays batches of auctions in parallel. Every auction gets its own
// pair of bidders, so runs share nothing but the history store.
type Runner struct {
	store    history.Store
	selector *strategy.Selector
	workers  int
	clock    clock.Clock
	recorder recorder.Recorder
	log      logger.Logger
}

// NewRunner creates a Runner. A non-positive worker count uses one worker per CPU.
func NewRunner(store history.Store, tuning strategy.Tuning, workers int, clk clock.Clock, rec recorder.Recorder, log logger.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		store:    store,
		selector: strategy.NewSelector(strategy.NewRegistry(tuning), tuning),
		workers:  workers,
		clock:    clk,
		recorder: rec,
		log:      log,
	}
}

// Run plays spec.Runs auctions. Per-run seeds are drawn from spec.Seed, so
// equal specs give equal outcomes regardless of scheduling.
func (r *Runner) Run(ctx context.Context, spec Spec) (*Summary, error) {
	if spec.Runs <= 0 {
		return nil, fmt.Errorf("tournament runs must be positive, got %d", spec.Runs)
	}
	if _, err := opponent.Build(spec.Opponent, spec.Seed); err != nil {
		return nil, err
	}

	start := r.clock.Now()
	workPool, err := workpool.NewWorkPool(r.workers)
	if err != nil {
		return nil, fmt.Errorf("create work pool: %w", err)
	}
	defer workPool.Stop()

	rng := rand.New(rand.NewSource(spec.Seed))
	outcomes := make([]Outcome, spec.Runs)
	for i := range outcomes {
		outcomes[i] = Outcome{Run: i, Seed: rng.Int63()}
	}

	wg := &sync.WaitGroup{}
	wg.Add(len(outcomes))
	lock := &sync.Mutex{}
	var errs []error
	for i := range outcomes {
		i := i
		workPool.Submit(func() {
			defer wg.Done()
			res, err := r.play(ctx, spec, outcomes[i].Seed)
			lock.Lock()
			defer lock.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("run %d: %w", i, err))
				return
			}
			outcomes[i].Result = res
		})
	}
	wg.Wait()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	summary := summarize(spec, outcomes)
	summary.ID = uuid.NewString()
	summary.Duration = r.clock.Since(start)

	r.log.Info("tournament finished",
		"tournament_id", summary.ID,
		"opponent", spec.Opponent,
		"runs", spec.Runs,
		"wins", summary.Wins,
		"losses", summary.Losses,
		"draws", summary.Draws,
		"win_rate", summary.WinRate,
		"duration", summary.Duration,
	)
	r.record(summary)
	return summary, nil
}

func (r *Runner) play(ctx context.Context, spec Spec, seed int64) (*auction.Result, error) {
	script, err := opponent.Build(spec.Opponent, seed)
	if err != nil {
		return nil, err
	}
	adaptive := bidder.New(AdaptiveName, r.selector, r.store, r.log)
	rival := bidder.New(spec.Opponent, script, r.store, r.log)
	return auction.Run(ctx, adaptive, rival, spec.Quantity, spec.Cash)
}

func summarize(spec Spec, outcomes []Outcome) *Summary {
	s := &Summary{Spec: spec, Outcomes: outcomes}
	quantities := make([]float64, 0, len(outcomes))
	cash := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		switch o.Result.Verdict {
		case model.VerdictWin:
			s.Wins++
		case model.VerdictLoss:
			s.Losses++
		default:
			s.Draws++
		}
		quantities = append(quantities, float64(o.Result.First.Quantity))
		cash = append(cash, float64(o.Result.First.RemainingCash))
	}
	s.WinRate = float64(s.Wins) / float64(len(outcomes))
	s.Quantity = NewStat(quantities)
	s.Cash = NewStat(cash)
	return s
}

// record hands the batch to the recorder. Failures are logged, never fatal.
func (r *Runner) record(s *Summary) {
	for _, o := range s.Outcomes {
		if err := r.recorder.RecordAuction(&recorder.AuctionEvent{
			TournamentID: s.ID,
			Opponent:     s.Spec.Opponent,
			Run:          o.Run,
			Seed:         o.Seed,
			Verdict:      o.Result.Verdict,
			Rounds:       o.Result.Rounds,
			Bidder:       o.Result.First,
			Rival:        o.Result.Second,
		}); err != nil {
			r.log.Error("record auction", "tournament_id", s.ID, "run", o.Run, "error", err)
		}
	}
	if err := r.recorder.RecordTournament(&recorder.TournamentEvent{
		TournamentID: s.ID,
		Opponent:     s.Spec.Opponent,
		Runs:         len(s.Outcomes),
		Wins:         s.Wins,
		Losses:       s.Losses,
		Draws:        s.Draws,
		WinRate:      s.WinRate,
		MeanQuantity: s.Quantity.Mean,
		MeanCash:     s.Cash.Mean,
		Duration:     s.Duration,
	}); err != nil {
		r.log.Error("record tournament", "tournament_id", s.ID, "error", err)
	}
}
