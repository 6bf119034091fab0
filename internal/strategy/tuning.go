package strategy

import (
	"fmt"

	"AuctionBidder/internal/calculator"
)

// Tuning holds the adjustable constants of the selector and the aggressive policy.
type Tuning struct {
	// AggressiveThresholdPct is the share (in percent) of the remaining quantity
	// still needed to win at which the selector turns aggressive.
	AggressiveThresholdPct float64 `yaml:"aggressive_threshold_pct"`
	// MinimumBidQuantity: auctions larger than this open with a minimum bid.
	MinimumBidQuantity int `yaml:"minimum_bid_quantity"`
	// OneSigmaMultiplier scales the opponent average to outbid ~84% of a normal spread.
	OneSigmaMultiplier float64 `yaml:"one_sigma_multiplier"`
	AverageWindow      int     `yaml:"average_window"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		AggressiveThresholdPct: 20,
		MinimumBidQuantity:     10,
		OneSigmaMultiplier:     1.34,
		AverageWindow:          calculator.DefaultAverageWindow,
	}
}

// WithDefaults fills zero fields from DefaultTuning.
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	if t.AggressiveThresholdPct == 0 {
		t.AggressiveThresholdPct = d.AggressiveThresholdPct
	}
	if t.MinimumBidQuantity == 0 {
		t.MinimumBidQuantity = d.MinimumBidQuantity
	}
	if t.OneSigmaMultiplier == 0 {
		t.OneSigmaMultiplier = d.OneSigmaMultiplier
	}
	if t.AverageWindow == 0 {
		t.AverageWindow = d.AverageWindow
	}
	return t
}

// Validate rejects constants that would make the selector meaningless.
func (t Tuning) Validate() error {
	if t.AggressiveThresholdPct < 0 || t.AggressiveThresholdPct > 100 {
		return fmt.Errorf("aggressive_threshold_pct must be within [0, 100], got %v", t.AggressiveThresholdPct)
	}
	if t.MinimumBidQuantity < 0 {
		return fmt.Errorf("minimum_bid_quantity must not be negative, got %d", t.MinimumBidQuantity)
	}
	if t.OneSigmaMultiplier <= 0 {
		return fmt.Errorf("one_sigma_multiplier must be positive, got %v", t.OneSigmaMultiplier)
	}
	if t.AverageWindow <= 0 {
		return fmt.Errorf("average_window must be positive, got %d", t.AverageWindow)
	}
	return nil
}
