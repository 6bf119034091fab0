package recorder

// NoopRecorder discards every event. Used when no recorder database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAuction(_ *AuctionEvent) error       { return nil }
func (n *NoopRecorder) RecordTournament(_ *TournamentEvent) error { return nil }
func (n *NoopRecorder) Close() error                              { return nil }
