package report

import (
	"fmt"
	"strings"

	"AuctionBidder/internal/auction"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/tournament"
)

// FormatAuction formats a single auction outcome.
func FormatAuction(res *auction.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Auction | %d rounds | %s\n", res.Rounds, res.Verdict))
	b.WriteString(formatStanding(res.First))
	b.WriteString(formatStanding(res.Second))
	if res.Verdict == model.VerdictDraw {
		b.WriteString("Result: draw\n")
	} else {
		b.WriteString(fmt.Sprintf("Winner: %s\n", res.Winner))
	}
	return b.String()
}

func formatStanding(s model.Standing) string {
	return fmt.Sprintf("  %-10s quantity %4d | cash left %6d\n", s.Name, s.Quantity, s.RemainingCash)
}

// FormatTournament formats a batch summary.
func FormatTournament(s *tournament.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tournament %s | vs %s\n", s.ID, s.Spec.Opponent))
	b.WriteString(fmt.Sprintf("Config: quantity %d, cash %d, %d runs, seed %d\n",
		s.Spec.Quantity, s.Spec.Cash, s.Spec.Runs, s.Spec.Seed))
	b.WriteString(fmt.Sprintf("Wins %d | Losses %d | Draws %d | Win rate %.1f%%\n",
		s.Wins, s.Losses, s.Draws, s.WinRate*100))
	b.WriteString(fmt.Sprintf("Quantity won: mean %.2f (min %.0f, max %.0f, sd %.2f)\n",
		s.Quantity.Mean, s.Quantity.Min, s.Quantity.Max, s.Quantity.StdDev))
	b.WriteString(fmt.Sprintf("Cash left:    mean %.2f (min %.0f, max %.0f, sd %.2f)\n",
		s.Cash.Mean, s.Cash.Min, s.Cash.Max, s.Cash.StdDev))
	b.WriteString(fmt.Sprintf("Duration: %s\n", s.Duration))
	return b.String()
}
