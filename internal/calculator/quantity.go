package calculator

import "AuctionBidder/internal/model"

// OpponentQuantity sums the quantity the opponent has won so far.
func OpponentQuantity(history []model.RoundResult) int {
	total := 0
	for _, r := range history {
		total += r.OpponentWonQuantity
	}
	return total
}

// MyQuantity sums the quantity this bidder has won so far.
func MyQuantity(history []model.RoundResult) int {
	total := 0
	for _, r := range history {
		total += r.MyWonQuantity
	}
	return total
}

// RemainingQuantity is the quantity still open for bidding.
func RemainingQuantity(history []model.RoundResult, initialQuantity int) int {
	return initialQuantity - MyQuantity(history) - OpponentQuantity(history)
}
