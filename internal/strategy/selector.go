package strategy

import (
	"errors"
	"fmt"

	"AuctionBidder/internal/calculator"
	"AuctionBidder/internal/model"
)

// ErrStrategyNotFound is returned when the chosen policy is missing from the registry.
var ErrStrategyNotFound = errors.New("could not select strategy")

// gameState is everything the rules look at, derived once per decision.
type gameState struct {
	historyLen       int
	initialQuantity  int
	myQuantity       int
	opponentQuantity int
	remaining        int
	myCash           int
	opponentCash     int
}

func deriveState(history []model.RoundResult, initialQuantity, initialCash int) gameState {
	s := gameState{
		historyLen:       len(history),
		initialQuantity:  initialQuantity,
		myQuantity:       calculator.MyQuantity(history),
		opponentQuantity: calculator.OpponentQuantity(history),
		myCash:           calculator.MyRemainingCash(history, initialCash),
		opponentCash:     calculator.OpponentRemainingCash(history, initialCash),
	}
	s.remaining = initialQuantity - s.myQuantity - s.opponentQuantity
	return s
}

func (s gameState) won() bool {
	return s.myQuantity >= model.WinThreshold(s.initialQuantity)
}

// rule is one step of the decision procedure. Order matters: the first match wins.
type rule struct {
	Label  string
	Policy model.PolicyName
	Match  func(s gameState, t Tuning) bool
}

// rules is the ordered decision table. Default applies when nothing matches.
var rules = []rule{
	{"last round", model.PolicyMaximum, func(s gameState, _ Tuning) bool {
		return s.initialQuantity == model.RoundQuantity || s.remaining == model.RoundQuantity
	}},
	{"opening probe", model.PolicyMinimum, func(s gameState, t Tuning) bool {
		return s.historyLen == 0 && s.initialQuantity > t.MinimumBidQuantity
	}},
	{"already decided", model.PolicyZero, func(s gameState, _ Tuning) bool {
		return s.won() || s.myQuantity+s.remaining < s.initialQuantity/2
	}},
	{"opponent broke", model.PolicyMinimum, func(s gameState, _ Tuning) bool {
		return !s.won() && s.historyLen > 0 && s.opponentCash == 0
	}},
	{"falling behind", model.PolicyAggressive, func(s gameState, t Tuning) bool {
		if s.opponentQuantity > s.myQuantity && s.opponentCash > s.myCash {
			return true
		}
		// A zero remainder with quantity still required gives +Inf, which counts as aggressive.
		requiredLeft := model.WinThreshold(s.initialQuantity) - s.myQuantity
		return float64(requiredLeft)*100/float64(s.remaining) >= t.AggressiveThresholdPct
	}},
}

// Selector picks the policy for the next round.
type Selector struct {
	registry Registry
	tuning   Tuning
}

// NewSelector creates a Selector over the given registry.
func NewSelector(registry Registry, t Tuning) *Selector {
	return &Selector{registry: registry, tuning: t.WithDefaults()}
}

// Decide returns the name of the policy that governs the next bid.
func (s *Selector) Decide(history []model.RoundResult, initialQuantity, initialCash int) model.PolicyName {
	state := deriveState(history, initialQuantity, initialCash)
	for _, r := range rules {
		if r.Match(state, s.tuning) {
			return r.Policy
		}
	}
	return model.PolicyDefault
}

// Select resolves the decided policy through the registry.
func (s *Selector) Select(history []model.RoundResult, initialQuantity, initialCash int) (Policy, error) {
	name := s.Decide(history, initialQuantity, initialCash)
	p, ok := s.registry.Get(name)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotFound, name)
	}
	return p, nil
}
