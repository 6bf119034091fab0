package bidder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"AuctionBidder/internal/calculator"
	"AuctionBidder/internal/history"
	"AuctionBidder/internal/logger"
	"AuctionBidder/internal/model"
	"AuctionBidder/internal/strategy"
)

var (
	// ErrInvalidConfig is returned by Init for a negative budget or an odd or negative quantity.
	ErrInvalidConfig = errors.New("invalid bidder configuration")
	// ErrNotInitialized is returned when bidding before Init.
	ErrNotInitialized = errors.New("bidder not initialized")
)

// PolicySelector chooses the policy for the next round.
type PolicySelector interface {
	Select(history []model.RoundResult, initialQuantity, initialCash int) (strategy.Policy, error)
}

// Bidder plays one side of the auction. The round history in the store is the ledger;
// wonQuantity and remainingCash are recomputed from it after every settlement.
// A Bidder is not safe for concurrent use.
type Bidder struct {
	id       string
	name     string
	selector PolicySelector
	store    history.Store
	log      logger.Logger

	run             int
	initialized     bool
	initialQuantity int
	initialCash     int
	wonQuantity     int
	remainingCash   int
}

// New creates an uninitialized bidder with a fresh identity.
func New(name string, selector PolicySelector, store history.Store, log logger.Logger) *Bidder {
	id := uuid.NewString()
	return &Bidder{
		id:       id,
		name:     name,
		selector: selector,
		store:    store,
		log:      log.With("bidder", name, "bidder_id", id),
	}
}

// Init starts a new run with the given quantity and cash. Calling it again resets the bidder.
func (b *Bidder) Init(quantity, cash int) error {
	if quantity < 0 || cash < 0 {
		return fmt.Errorf("%w: quantity %d and cash %d must not be negative", ErrInvalidConfig, quantity, cash)
	}
	if quantity%model.RoundQuantity != 0 {
		return fmt.Errorf("%w: quantity %d is not a multiple of %d", ErrInvalidConfig, quantity, model.RoundQuantity)
	}

	// Each run gets its own ledger key so a reset never sees rounds from an earlier run.
	b.run++
	b.initialized = true
	b.initialQuantity = quantity
	b.initialCash = cash
	b.wonQuantity = 0
	b.remainingCash = cash

	b.log.Debug("bidder initialized", "run", b.run, "quantity", quantity, "cash", cash)
	return nil
}

// PlaceBid picks a policy from the current history and returns its bid, capped by the cash left.
func (b *Bidder) PlaceBid(ctx context.Context) (int, error) {
	if !b.initialized {
		return 0, ErrNotInitialized
	}

	rounds, err := b.store.History(ctx, b.ledgerKey())
	if err != nil {
		return 0, fmt.Errorf("fetch round history: %w", err)
	}

	policy, err := b.selector.Select(rounds, b.initialQuantity, b.initialCash)
	if err != nil {
		return 0, err
	}
	if policy == nil {
		return 0, strategy.ErrStrategyNotFound
	}

	raw := policy.PlaceBid(rounds, b.initialQuantity, b.initialCash)
	bid := min(raw, b.remainingCash)

	b.log.Debug("bid placed",
		"round", len(rounds)+1,
		"policy", policy.Name(),
		"raw_bid", raw,
		"bid", bid,
		"won_quantity", b.wonQuantity,
		"remaining_cash", b.remainingCash,
	)
	return bid, nil
}

// Bids settles a round once both bids are known and appends the result to the ledger.
func (b *Bidder) Bids(ctx context.Context, myBid, opponentBid int) error {
	if !b.initialized {
		return ErrNotInitialized
	}

	rounds, err := b.store.History(ctx, b.ledgerKey())
	if err != nil {
		return fmt.Errorf("fetch round history: %w", err)
	}

	mine, theirs := model.Settle(myBid, opponentBid)
	result := model.RoundResult{
		MyBid:                 myBid,
		MyWonQuantity:         mine,
		OpponentBid:           opponentBid,
		OpponentWonQuantity:   theirs,
		OpponentRemainingCash: calculator.OpponentRemainingCash(rounds, b.initialCash) - opponentBid,
	}
	if err := b.store.Append(ctx, b.ledgerKey(), result); err != nil {
		return fmt.Errorf("append round result: %w", err)
	}

	b.project(append(rounds, result))
	return nil
}

// project refreshes the cached counters from the ledger.
func (b *Bidder) project(rounds []model.RoundResult) {
	b.wonQuantity = calculator.MyQuantity(rounds)
	b.remainingCash = calculator.MyRemainingCash(rounds, b.initialCash)
}

func (b *Bidder) ledgerKey() string {
	return fmt.Sprintf("%s/%d", b.id, b.run)
}

func (b *Bidder) ID() string           { return b.id }
func (b *Bidder) Name() string         { return b.name }
func (b *Bidder) Quantity() int        { return b.wonQuantity }
func (b *Bidder) RemainingCash() int   { return b.remainingCash }
func (b *Bidder) InitialQuantity() int { return b.initialQuantity }
func (b *Bidder) InitialCash() int     { return b.initialCash }

// Standing snapshots the bidder's current position.
func (b *Bidder) Standing() model.Standing {
	return model.Standing{Name: b.name, Quantity: b.wonQuantity, RemainingCash: b.remainingCash}
}

// History returns the rounds of the current run.
func (b *Bidder) History(ctx context.Context) ([]model.RoundResult, error) {
	if !b.initialized {
		return []model.RoundResult{}, nil
	}
	return b.store.History(ctx, b.ledgerKey())
}
