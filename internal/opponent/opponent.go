package opponent

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"AuctionBidder/internal/model"
	"AuctionBidder/internal/strategy"
)

// ErrUnknownOpponent is returned by Build for an unregistered opponent kind.
var ErrUnknownOpponent = errors.New("unknown opponent")

const (
	KindFlat     = "flat"
	KindRandom   = "random"
	KindGreedy   = "greedy"
	KindUndercut = "undercut"
)

// FlatPolicy spreads the budget evenly over every unit.
type FlatPolicy struct{}

func (FlatPolicy) Name() model.PolicyName { return "FLAT" }

func (FlatPolicy) PlaceBid(_ []model.RoundResult, initialQuantity, initialCash int) int {
	if initialQuantity <= 0 {
		return initialCash
	}
	return initialCash / initialQuantity
}

// RandomPolicy bids uniformly in [0, 1.5 * cash / rounds).
// It owns its random source and must not be shared between auctions.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (*RandomPolicy) Name() model.PolicyName { return "RANDOM" }

func (p *RandomPolicy) PlaceBid(_ []model.RoundResult, initialQuantity, initialCash int) int {
	rounds := initialQuantity / model.RoundQuantity
	if rounds <= 0 {
		return 0
	}
	limit := int(1.5 * float64(initialCash) / float64(rounds))
	if limit <= 0 {
		return 0
	}
	return p.rng.Intn(limit)
}

// GreedyPolicy splits the budget over one round fewer than the auction has.
type GreedyPolicy struct{}

func (GreedyPolicy) Name() model.PolicyName { return "GREEDY" }

func (GreedyPolicy) PlaceBid(_ []model.RoundResult, initialQuantity, initialCash int) int {
	divisor := initialQuantity/model.RoundQuantity - 1
	if divisor <= 0 {
		return initialCash
	}
	return initialCash / divisor
}

// UndercutPolicy bids one unit below the cash-optimal shaded bid.
type UndercutPolicy struct{}

func (UndercutPolicy) Name() model.PolicyName { return "UNDERCUT" }

func (UndercutPolicy) PlaceBid(_ []model.RoundResult, initialQuantity, initialCash int) int {
	return max(strategy.CashOptimalBid(initialQuantity, initialCash)-1, 0)
}

// Script always selects the same policy.
type Script struct {
	Policy strategy.Policy
}

func (s Script) Select(_ []model.RoundResult, _, _ int) (strategy.Policy, error) {
	if s.Policy == nil {
		return nil, strategy.ErrStrategyNotFound
	}
	return s.Policy, nil
}

var builders = map[string]func(seed int64) strategy.Policy{
	KindFlat:     func(int64) strategy.Policy { return FlatPolicy{} },
	KindRandom:   func(seed int64) strategy.Policy { return NewRandomPolicy(seed) },
	KindGreedy:   func(int64) strategy.Policy { return GreedyPolicy{} },
	KindUndercut: func(int64) strategy.Policy { return UndercutPolicy{} },
}

// Build returns a scripted selector for the named opponent kind.
func Build(kind string, seed int64) (Script, error) {
	build, ok := builders[kind]
	if !ok {
		return Script{}, fmt.Errorf("%w: %q", ErrUnknownOpponent, kind)
	}
	return Script{Policy: build(seed)}, nil
}

// Kinds lists the registered opponent kinds in name order.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
