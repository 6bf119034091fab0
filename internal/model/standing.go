package model

// Standing is a participant's position when an auction ends.
type Standing struct {
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	RemainingCash int    `json:"remaining_cash"`
}

// Verdict is the outcome of an auction from the first participant's side.
type Verdict string

const (
	VerdictWin  Verdict = "WIN"
	VerdictLoss Verdict = "LOSS"
	VerdictDraw Verdict = "DRAW"
)
