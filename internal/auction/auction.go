package auction

import (
	"context"
	"fmt"

	"AuctionBidder/internal/model"
)

// Participant is one side of a two-bidder auction.
type Participant interface {
	Init(quantity, cash int) error
	PlaceBid(ctx context.Context) (int, error)
	Bids(ctx context.Context, myBid, opponentBid int) error
	Name() string
	Quantity() int
	RemainingCash() int
}

// Result is the outcome of one auction, seen from the first participant.
type Result struct {
	Verdict model.Verdict
	Winner  string // empty on a draw
	Rounds  int
	First   model.Standing
	Second  model.Standing
}

// Run initializes both participants and plays rounds until less than one
// round's quantity is left.
func Run(ctx context.Context, first, second Participant, quantity, cash int) (*Result, error) {
	if err := first.Init(quantity, cash); err != nil {
		return nil, fmt.Errorf("init %s: %w", first.Name(), err)
	}
	if err := second.Init(quantity, cash); err != nil {
		return nil, fmt.Errorf("init %s: %w", second.Name(), err)
	}

	rounds := 0
	for left := quantity; left >= model.RoundQuantity; left -= model.RoundQuantity {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		firstBid, err := first.PlaceBid(ctx)
		if err != nil {
			return nil, fmt.Errorf("round %d: %s bid: %w", rounds+1, first.Name(), err)
		}
		secondBid, err := second.PlaceBid(ctx)
		if err != nil {
			return nil, fmt.Errorf("round %d: %s bid: %w", rounds+1, second.Name(), err)
		}
		if err := first.Bids(ctx, firstBid, secondBid); err != nil {
			return nil, fmt.Errorf("round %d: settle %s: %w", rounds+1, first.Name(), err)
		}
		if err := second.Bids(ctx, secondBid, firstBid); err != nil {
			return nil, fmt.Errorf("round %d: settle %s: %w", rounds+1, second.Name(), err)
		}
		rounds++
	}

	res := &Result{
		Rounds: rounds,
		First:  standing(first),
		Second: standing(second),
	}
	res.Verdict = Judge(res.First, res.Second)
	switch res.Verdict {
	case model.VerdictWin:
		res.Winner = res.First.Name
	case model.VerdictLoss:
		res.Winner = res.Second.Name
	}
	return res, nil
}

// Judge ranks by quantity won, then by cash left. Equal on both is a draw.
func Judge(first, second model.Standing) model.Verdict {
	switch {
	case first.Quantity > second.Quantity:
		return model.VerdictWin
	case first.Quantity < second.Quantity:
		return model.VerdictLoss
	case first.RemainingCash > second.RemainingCash:
		return model.VerdictWin
	case first.RemainingCash < second.RemainingCash:
		return model.VerdictLoss
	default:
		return model.VerdictDraw
	}
}

func standing(p Participant) model.Standing {
	return model.Standing{Name: p.Name(), Quantity: p.Quantity(), RemainingCash: p.RemainingCash()}
}
