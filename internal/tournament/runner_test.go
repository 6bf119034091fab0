package tournament_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"AuctionBidder/internal/history"
	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/opponent"
	"AuctionBidder/internal/recorder"
	"AuctionBidder/internal/strategy"
	"AuctionBidder/internal/tournament"
)

type memoryRecorder struct {
	mu          sync.Mutex
	auctions    []*recorder.AuctionEvent
	tournaments []*recorder.TournamentEvent
}

func (m *memoryRecorder) RecordAuction(evt *recorder.AuctionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auctions = append(m.auctions, evt)
	return nil
}

func (m *memoryRecorder) RecordTournament(evt *recorder.TournamentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournaments = append(m.tournaments, evt)
	return nil
}

func (m *memoryRecorder) Close() error { return nil }

var _ = Describe("Runner", func() {
	var (
		rec    *memoryRecorder
		clk    *fakeclock.FakeClock
		runner *tournament.Runner
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		rec = &memoryRecorder{}
		clk = fakeclock.NewFakeClock(time.Unix(1700000000, 0))
		runner = tournament.NewRunner(history.NewMemoryStore(), strategy.DefaultTuning(), 4, clk, rec, logger.NewNop())
	})

	Context("against the undercutting opponent", func() {
		It("wins every auction with a majority", func() {
			summary, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindUndercut, Runs: 10, Seed: 1, Quantity: 10, Cash: 1000})
			Ω(err).ShouldNot(HaveOccurred())

			Ω(summary.Wins).Should(Equal(10))
			Ω(summary.WinRate).Should(Equal(1.0))
			Ω(summary.Quantity.Min).Should(BeNumerically(">=", 6))
			for i, o := range summary.Outcomes {
				Ω(o.Run).Should(Equal(i))
				Ω(o.Result.Verdict).Should(Equal(model.VerdictWin))
			}
		})
	})

	Context("against the random opponent", func() {
		It("wins more than half of a hundred auctions", func() {
			summary, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindRandom, Runs: 100, Seed: 7, Quantity: 100, Cash: 10000})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(summary.WinRate).Should(BeNumerically(">", 0.5))
			Ω(summary.Wins + summary.Losses + summary.Draws).Should(Equal(100))
		})

		It("is reproducible for the same seed", func() {
			spec := tournament.Spec{Opponent: opponent.KindRandom, Runs: 20, Seed: 99, Quantity: 10, Cash: 1000}
			first, err := runner.Run(ctx, spec)
			Ω(err).ShouldNot(HaveOccurred())
			second, err := runner.Run(ctx, spec)
			Ω(err).ShouldNot(HaveOccurred())

			Ω(second.ID).ShouldNot(Equal(first.ID))
			for i := range first.Outcomes {
				Ω(second.Outcomes[i].Seed).Should(Equal(first.Outcomes[i].Seed))
				Ω(*second.Outcomes[i].Result).Should(Equal(*first.Outcomes[i].Result))
			}
		})
	})

	Describe("recording", func() {
		It("records every auction and the summary", func() {
			summary, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindFlat, Runs: 5, Seed: 3, Quantity: 10, Cash: 1000})
			Ω(err).ShouldNot(HaveOccurred())

			Ω(rec.auctions).Should(HaveLen(5))
			Ω(rec.tournaments).Should(HaveLen(1))
			Ω(rec.tournaments[0].TournamentID).Should(Equal(summary.ID))
			Ω(rec.tournaments[0].Wins).Should(Equal(summary.Wins))
			Ω(rec.auctions[0].Bidder.Name).Should(Equal(tournament.AdaptiveName))
			Ω(rec.auctions[0].Rival.Name).Should(Equal(opponent.KindFlat))
		})

		It("measures the duration on the injected clock", func() {
			summary, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindFlat, Runs: 1, Seed: 3, Quantity: 10, Cash: 1000})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(summary.Duration).Should(BeZero())
		})
	})

	Describe("invalid specs", func() {
		It("rejects an unknown opponent", func() {
			_, err := runner.Run(ctx, tournament.Spec{Opponent: "psychic", Runs: 1, Quantity: 10, Cash: 100})
			Ω(errors.Is(err, opponent.ErrUnknownOpponent)).Should(BeTrue())
		})

		It("rejects a non-positive run count", func() {
			_, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindFlat, Runs: 0, Quantity: 10, Cash: 100})
			Ω(err).Should(HaveOccurred())
		})

		It("surfaces invalid auction configuration", func() {
			_, err := runner.Run(ctx, tournament.Spec{Opponent: opponent.KindFlat, Runs: 2, Quantity: 9, Cash: 100})
			Ω(err).Should(HaveOccurred())
		})
	})
})

var _ = Describe("NewStat", func() {
	It("summarizes the data", func() {
		s := tournament.NewStat([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		Ω(s.Min).Should(Equal(2.0))
		Ω(s.Max).Should(Equal(9.0))
		Ω(s.Mean).Should(Equal(5.0))
		Ω(s.StdDev).Should(BeNumerically("~", 2.0, 1e-9))
		Ω(s.Total).Should(Equal(40.0))
	})

	It("is zero for no data", func() {
		Ω(tournament.NewStat(nil)).Should(Equal(tournament.Stat{}))
	})
})
