package history

import (
	"context"

	"AuctionBidder/internal/model"
)

// Store keeps the append-only round history of each bidder.
// Calls for different bidder ids never interfere; calls for one id must be serialized by the caller.
type Store interface {
	Append(ctx context.Context, bidderID string, result model.RoundResult) error
	// History returns the rounds in append order, or an empty non-nil slice for unknown ids.
	History(ctx context.Context, bidderID string) ([]model.RoundResult, error)
	Close() error
}
