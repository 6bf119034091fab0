package calculator

import (
	"github.com/shopspring/decimal"

	"AuctionBidder/internal/model"
)

// DefaultAverageWindow is the number of recent rounds averaged by OpponentAverageBid.
const DefaultAverageWindow = 3

// OpponentAverageBid returns the mean opponent bid over the last window rounds,
// or over all rounds when fewer are available. The mean is rounded half up.
func OpponentAverageBid(history []model.RoundResult, window int) int {
	if window <= 0 {
		window = DefaultAverageWindow
	}
	if len(history) == 0 {
		return 0
	}
	start := len(history) - window
	if start < 0 {
		start = 0
	}
	sum := int64(0)
	for i := start; i < len(history); i++ {
		sum += int64(history[i].OpponentBid)
	}
	n := int64(len(history) - start)
	return RoundHalfUp(decimal.NewFromInt(sum).Div(decimal.NewFromInt(n)))
}

// RoundHalfUp rounds a non-negative amount to the nearest whole unit, halves going up.
func RoundHalfUp(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
