package recorder

import (
	"time"

	"AuctionBidder/internal/model"
)

// AuctionEvent holds one finished auction of a tournament.
type AuctionEvent struct {
	TournamentID string
	Opponent     string
	Run          int
	Seed         int64
	Verdict      model.Verdict
	Rounds       int
	Bidder       model.Standing
	Rival        model.Standing
}

// TournamentEvent summarizes a batch of auctions against one opponent.
type TournamentEvent struct {
	TournamentID string
	Opponent     string
	Runs         int
	Wins         int
	Losses       int
	Draws        int
	WinRate      float64
	MeanQuantity float64
	MeanCash     float64
	Duration     time.Duration
}

// Recorder persists auction outcomes for later analysis.
type Recorder interface {
	RecordAuction(evt *AuctionEvent) error
	RecordTournament(evt *TournamentEvent) error
	Close() error
}
