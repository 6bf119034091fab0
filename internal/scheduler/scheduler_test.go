package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/tournament"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeRunner) Run(_ context.Context, spec tournament.Spec) (*tournament.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, spec.Opponent)
	if f.fail[spec.Opponent] {
		return nil, errors.New("boom")
	}
	return &tournament.Summary{ID: spec.Opponent, Spec: spec, Wins: 1, WinRate: 1}, nil
}

func specs(opponents ...string) []tournament.Spec {
	out := make([]tournament.Spec, 0, len(opponents))
	for _, o := range opponents {
		out = append(out, tournament.Spec{Opponent: o, Runs: 1, Quantity: 10, Cash: 100})
	}
	return out
}

func TestRunNow_PlaysEverySpec(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"greedy": true}}
	s := NewScheduler(context.Background(), runner, specs("flat", "greedy", "random"), logger.NewNop())

	got := s.RunNow()
	check.Equal(t, []string{"flat", "greedy", "random"}, runner.calls)
	check.Equal(t, 2, len(got))
	check.Equal(t, "flat", got[0].ID)
	check.Equal(t, "random", got[1].ID)
	check.Equal(t, got, s.Last())
}

func TestRunNow_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := &fakeRunner{}
	s := NewScheduler(ctx, runner, specs("flat", "random"), logger.NewNop())

	check.Equal(t, 0, len(s.RunNow()))
	check.Equal(t, 0, len(runner.calls))
}

func TestRegister(t *testing.T) {
	s := NewScheduler(context.Background(), &fakeRunner{}, specs("flat"), logger.NewNop())
	assert.NoError(t, s.Register("0 0 3 * * *"))
	check.Equal(t, 1, len(s.Cron.Entries()))

	check.Error(t, s.Register("not a cron expression"))

	s.Start()
	s.Stop()
}
