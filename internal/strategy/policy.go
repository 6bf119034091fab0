package strategy

import (
	"github.com/shopspring/decimal"

	"AuctionBidder/internal/calculator"
	"AuctionBidder/internal/model"
)

// Policy computes the next bid from the round history and the auction configuration.
type Policy interface {
	Name() model.PolicyName
	PlaceBid(history []model.RoundResult, initialQuantity, initialCash int) int
}

// ZeroPolicy stops spending once the outcome can no longer change.
type ZeroPolicy struct{}

func (ZeroPolicy) Name() model.PolicyName { return model.PolicyZero }

func (ZeroPolicy) PlaceBid(_ []model.RoundResult, _, _ int) int { return 0 }

// MinimumPolicy bids a single unit.
type MinimumPolicy struct{}

func (MinimumPolicy) Name() model.PolicyName { return model.PolicyMinimum }

func (MinimumPolicy) PlaceBid(_ []model.RoundResult, _, _ int) int { return 1 }

// MaximumPolicy goes all-in with the initial budget. The bidder clamps it to what is left.
type MaximumPolicy struct{}

func (MaximumPolicy) Name() model.PolicyName { return model.PolicyMaximum }

func (MaximumPolicy) PlaceBid(_ []model.RoundResult, _, initialCash int) int { return initialCash }

// DefaultPolicy shades the estimated per-win valuation by (n-1)/n with n = 2 bidders.
type DefaultPolicy struct{}

func (DefaultPolicy) Name() model.PolicyName { return model.PolicyDefault }

func (DefaultPolicy) PlaceBid(history []model.RoundResult, initialQuantity, initialCash int) int {
	bid := CashOptimalBid(initialQuantity, initialCash)
	opponentCash := calculator.OpponentRemainingCash(history, initialCash)
	if opponentCash < bid {
		return opponentCash + 1
	}
	return bid
}

// CashOptimalBid is the shaded bid for an even spread of the budget over the rounds needed to win.
func CashOptimalBid(initialQuantity, initialCash int) int {
	numberOfBidsToWin := initialQuantity/model.RoundQuantity/2 + 1
	return initialCash / numberOfBidsToWin / 2
}

// AggressivePolicy outbids the opponent's recent average by one standard deviation.
type AggressivePolicy struct {
	Multiplier    decimal.Decimal
	AverageWindow int
}

// NewAggressivePolicy builds the policy from tuning constants.
func NewAggressivePolicy(t Tuning) AggressivePolicy {
	t = t.WithDefaults()
	return AggressivePolicy{
		Multiplier:    decimal.NewFromFloat(t.OneSigmaMultiplier),
		AverageWindow: t.AverageWindow,
	}
}

func (AggressivePolicy) Name() model.PolicyName { return model.PolicyAggressive }

func (p AggressivePolicy) PlaceBid(history []model.RoundResult, initialQuantity, initialCash int) int {
	opponentQuantity := calculator.OpponentQuantity(history)
	myQuantity := calculator.MyQuantity(history)
	remaining := initialQuantity - myQuantity - opponentQuantity
	opponentCash := calculator.OpponentRemainingCash(history, initialCash)
	required := initialQuantity / 2

	// Opponent is one round away from the threshold: outbid it outright.
	if required-opponentQuantity == 0 {
		return min(opponentCash+1, calculator.MyRemainingCash(history, initialCash))
	}

	average := calculator.OpponentAverageBid(history, p.AverageWindow)
	bid := calculator.RoundHalfUp(decimal.NewFromInt(int64(average)).Mul(p.Multiplier))

	if required <= myQuantity+remaining && opponentCash < bid {
		return opponentCash + 1
	}
	return bid
}
