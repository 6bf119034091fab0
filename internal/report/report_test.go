package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/peterldowns/testy/check"

	"AuctionBidder/internal/auction"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/tournament"
)

func sampleSummary(opponent string, wins, runs int) *tournament.Summary {
	s := &tournament.Summary{
		ID:       "t-1",
		Spec:     tournament.Spec{Opponent: opponent, Runs: runs, Seed: 42, Quantity: 10, Cash: 1000},
		Outcomes: make([]tournament.Outcome, runs),
		Wins:     wins,
		Losses:   runs - wins,
		WinRate:  float64(wins) / float64(runs),
		Quantity: tournament.NewStat([]float64{6, 8}),
		Cash:     tournament.NewStat([]float64{100, 300}),
		Duration: 1500 * time.Millisecond,
	}
	return s
}

func TestFormatAuction(t *testing.T) {
	res := &auction.Result{
		Verdict: model.VerdictWin,
		Winner:  "adaptive",
		Rounds:  5,
		First:   model.Standing{Name: "adaptive", Quantity: 8, RemainingCash: 0},
		Second:  model.Standing{Name: "undercut", Quantity: 2, RemainingCash: 175},
	}
	out := FormatAuction(res)
	check.True(t, strings.Contains(out, "5 rounds"))
	check.True(t, strings.Contains(out, "Winner: adaptive"))
	check.True(t, strings.Contains(out, "undercut"))

	res.Verdict = model.VerdictDraw
	res.Winner = ""
	check.True(t, strings.Contains(FormatAuction(res), "Result: draw"))
}

func TestFormatTournament(t *testing.T) {
	out := FormatTournament(sampleSummary("random", 3, 4))
	check.True(t, strings.Contains(out, "vs random"))
	check.True(t, strings.Contains(out, "Win rate 75.0%"))
	check.True(t, strings.Contains(out, "mean 7.00"))
	check.True(t, strings.Contains(out, "Duration: 1.5s"))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, []*tournament.Summary{sampleSummary("random", 3, 4), sampleSummary("greedy", 1, 4)})
	check.NoError(t, err)

	out := buf.String()
	check.True(t, strings.Contains(out, "<svg"))
	check.True(t, strings.Contains(out, "random"))
	check.True(t, strings.Contains(out, "75% (3/4)"))
	check.True(t, strings.Contains(out, "#c62828"))
	check.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_PropagatesWriteErrors(t *testing.T) {
	check.Error(t, WriteSVG(failingWriter{}, []*tournament.Summary{sampleSummary("flat", 1, 1)}))
}
