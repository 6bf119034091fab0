package strategy

import (
	"errors"
	"testing"

	"github.com/peterldowns/testy/check"

	"AuctionBidder/internal/model"
)

func won(myBid, opponentBid, opponentCash int) model.RoundResult {
	return model.RoundResult{MyBid: myBid, MyWonQuantity: 2, OpponentBid: opponentBid, OpponentRemainingCash: opponentCash}
}

func lost(myBid, opponentBid, opponentCash int) model.RoundResult {
	return model.RoundResult{MyBid: myBid, OpponentBid: opponentBid, OpponentWonQuantity: 2, OpponentRemainingCash: opponentCash}
}

func tied(bid, opponentCash int) model.RoundResult {
	return model.RoundResult{MyBid: bid, MyWonQuantity: 1, OpponentBid: bid, OpponentWonQuantity: 1, OpponentRemainingCash: opponentCash}
}

func repeat(r model.RoundResult, n int) []model.RoundResult {
	out := make([]model.RoundResult, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestSelector_Decide(t *testing.T) {
	sel := NewSelector(NewRegistry(DefaultTuning()), DefaultTuning())

	tests := []struct {
		name            string
		history         []model.RoundResult
		initialQuantity int
		want            model.PolicyName
	}{
		{"single round auction", nil, 2, model.PolicyMaximum},
		{"single round auction ignores history", []model.RoundResult{tied(1, 99)}, 2, model.PolicyMaximum},
		{"last round", []model.RoundResult{won(10, 5, 95), won(10, 5, 90), lost(1, 5, 85), lost(1, 5, 80)}, 10, model.PolicyMaximum},
		{"opening probe in large auction", nil, 12, model.PolicyMinimum},
		{"threshold auction does not probe", nil, 10, model.PolicyAggressive},
		{"small auction opens aggressive", nil, 8, model.PolicyAggressive},
		{"victory secured", []model.RoundResult{won(10, 5, 95), won(10, 5, 90), won(10, 5, 85)}, 10, model.PolicyZero},
		{"victory impossible", []model.RoundResult{lost(1, 5, 95), lost(1, 5, 90), lost(1, 5, 85)}, 10, model.PolicyZero},
		{"opponent broke", []model.RoundResult{lost(1, 100, 0)}, 10, model.PolicyMinimum},
		{"tightening race", []model.RoundResult{won(10, 5, 95), lost(1, 20, 75)}, 10, model.PolicyAggressive},
		{"comfortable lead", append(repeat(won(2, 1, 99), 22), repeat(lost(1, 2, 97), 5)...), 100, model.PolicyDefault},
		{"nothing left but a tie", repeat(tied(5, 50), 5), 10, model.PolicyAggressive},
	}
	for _, tt := range tests {
		got := sel.Decide(tt.history, tt.initialQuantity, 100)
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestSelector_FallingBehindOnBothAxes(t *testing.T) {
	// A threshold of 100% isolates the quantity-and-cash comparison.
	tuning := DefaultTuning()
	tuning.AggressiveThresholdPct = 100
	sel := NewSelector(NewRegistry(tuning), tuning)

	behind := []model.RoundResult{won(500, 10, 990), lost(10, 20, 970), lost(10, 20, 950)}
	check.Equal(t, model.PolicyAggressive, sel.Decide(behind, 100, 1000))

	// opponent ahead on quantity but poorer
	spent := []model.RoundResult{won(10, 5, 995), lost(10, 500, 495), lost(10, 400, 95)}
	check.Equal(t, model.PolicyDefault, sel.Decide(spent, 100, 1000))
}

func TestSelector_Select(t *testing.T) {
	sel := NewSelector(NewRegistry(DefaultTuning()), DefaultTuning())
	p, err := sel.Select(nil, 2, 100)
	check.NoError(t, err)
	check.Equal(t, model.PolicyMaximum, p.Name())
	check.Equal(t, 100, p.PlaceBid(nil, 2, 100))
}

func TestSelector_MissingPolicy(t *testing.T) {
	registry := NewRegistry(DefaultTuning())
	delete(registry, model.PolicyMaximum)
	sel := NewSelector(registry, DefaultTuning())

	p, err := sel.Select(nil, 2, 100)
	check.Nil(t, p)
	if !errors.Is(err, ErrStrategyNotFound) {
		t.Fatalf("expected ErrStrategyNotFound, got %v", err)
	}
}

func TestTuning(t *testing.T) {
	check.NoError(t, DefaultTuning().Validate())
	check.Equal(t, DefaultTuning(), Tuning{}.WithDefaults())

	bad := DefaultTuning()
	bad.AggressiveThresholdPct = 120
	check.Error(t, bad.Validate())

	bad = DefaultTuning()
	bad.AverageWindow = -1
	check.Error(t, bad.Validate())
}
