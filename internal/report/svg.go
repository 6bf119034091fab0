package report

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"AuctionBidder/internal/tournament"
)

const border = 10
const headerHeight = 50
const labelWidth = 120
const barMaxWidth = 400
const barHeight = 24
const barSpacing = 8
const chartWidth = border*3 + labelWidth + barMaxWidth + 80

const textStyle = `text-anchor:start;font-size:14px;font-family:Helvetica Neue`

// WriteSVG draws one win-rate bar per tournament summary.
func WriteSVG(w io.Writer, summaries []*tournament.Summary) error {
	height := headerHeight + len(summaries)*(barHeight+barSpacing) + border
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(chartWidth, height)
	s.Rect(0, 0, chartWidth, height, "fill:white")
	s.Text(border, 30, "Adaptive bidder win rate", `text-anchor:start;font-size:20px;font-family:Helvetica Neue`)

	for i, sum := range summaries {
		y := headerHeight + i*(barHeight+barSpacing)
		width := int(sum.WinRate * barMaxWidth)
		s.Text(border, y+barHeight-7, sum.Spec.Opponent, textStyle)
		s.Rect(border*2+labelWidth, y, barMaxWidth, barHeight, "fill:#eeeeee")
		s.Rect(border*2+labelWidth, y, width, barHeight, fmt.Sprintf("fill:%s", barColor(sum.WinRate)))
		s.Text(border*3+labelWidth+barMaxWidth, y+barHeight-7,
			fmt.Sprintf("%.0f%% (%d/%d)", sum.WinRate*100, sum.Wins, len(sum.Outcomes)), textStyle)
	}

	s.End()
	return ew.err
}

// errWriter keeps the first write error; svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func barColor(winRate float64) string {
	switch {
	case winRate > 0.5:
		return "#2e7d32"
	case winRate == 0.5:
		return "#f9a825"
	default:
		return "#c62828"
	}
}
