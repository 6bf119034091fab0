package model

// RoundQuantity is the number of units resolved by a single round.
const RoundQuantity = 2

// RoundResult is one completed round as seen by the recording bidder.
type RoundResult struct {
	MyBid                 int `json:"my_bid"`
	MyWonQuantity         int `json:"my_won_quantity"`
	OpponentBid           int `json:"opponent_bid"`
	OpponentWonQuantity   int `json:"opponent_won_quantity"`
	OpponentRemainingCash int `json:"opponent_remaining_cash"` // after this round
}

// Settle splits the round quantity between the two bids.
// The higher bid takes the whole round, equal bids split it evenly.
func Settle(myBid, opponentBid int) (mine, theirs int) {
	switch {
	case myBid > opponentBid:
		return RoundQuantity, 0
	case myBid < opponentBid:
		return 0, RoundQuantity
	default:
		return RoundQuantity / 2, RoundQuantity / 2
	}
}

// WinThreshold returns the quantity that guarantees a strict majority.
func WinThreshold(initialQuantity int) int {
	return initialQuantity/2 + 1
}
