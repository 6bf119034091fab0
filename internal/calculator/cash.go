package calculator

import "AuctionBidder/internal/model"

// MyRemainingCash is the initial budget minus every bid placed so far.
func MyRemainingCash(history []model.RoundResult, initialCash int) int {
	spent := 0
	for _, r := range history {
		spent += r.MyBid
	}
	return initialCash - spent
}

// OpponentRemainingCash returns the opponent balance recorded with the latest round.
// The recorded value is authoritative; it is not rebuilt from observed bids.
func OpponentRemainingCash(history []model.RoundResult, initialCash int) int {
	if len(history) == 0 {
		return initialCash
	}
	return history[len(history)-1].OpponentRemainingCash
}
