// Package layout composes normalized records into card geometry.
//
// The composer is a pure, single-pass transform: it wraps each record's value
// against the style's character budgets, assigns x/y offsets to every line,
// and computes the total block height. It holds no state and emits no markup;
// serialization belongs to the render sinks.
package layout

import (
	"github.com/feedcard/feedcard/pkg/normalize"
	"github.com/feedcard/feedcard/pkg/style"
	"github.com/feedcard/feedcard/pkg/textfit"
)

// Role tags a line as label or value text so sinks can style them apart.
type Role string

const (
	RoleLabel Role = "label"
	RoleValue Role = "value"
)

// Line is a single positioned run of text. X and Y locate the text baseline
// anchor in card coordinates.
type Line struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Role Role    `json:"role"`
	Text string  `json:"text"`
}

// RecordLayout groups the lines of one record together with its link, so a
// sink can wrap the whole record in a single hyperlink.
type RecordLayout struct {
	Link  string `json:"link,omitempty"`
	Lines []Line `json:"lines"`
}

// Layout is the composed card geometry handed to a render sink. It is
// derived data: recomputed every run, never persisted.
type Layout struct {
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	Records []RecordLayout `json:"records"`
}

// LineCount returns the total number of text lines across all records.
func (l Layout) LineCount() int {
	n := 0
	for _, r := range l.Records {
		n += len(r.Lines)
	}
	return n
}

// Compose lays out the records top to bottom. Each record's first line
// carries the label at the left padding and the value at the fixed value
// column; continuation lines align to the value column, never the left
// margin, so wrapped text reads as a hanging indent under the value.
func Compose(cfg style.Config, records []normalize.Record) Layout {
	est := textfit.NewEstimator(cfg)
	first := est.FirstLineBudget()
	cont := est.ContLineBudget()

	labelX := cfg.PaddingXPx
	valueX := cfg.PaddingXPx + cfg.LabelColumnWidthPx + cfg.LabelGapPx

	l := Layout{
		Width:   cfg.BlockWidthPx,
		Records: make([]RecordLayout, 0, len(records)),
	}

	// The cursor tracks the baseline of the current line.
	y := cfg.PaddingTopPx + cfg.LineHeightPx
	lines := 0

	for _, rec := range records {
		wrapped := textfit.Wrap(rec.Primary, rec.Secondary,
			first, cont, cfg.MaxLinesPerValue, est.Slack())

		rl := RecordLayout{
			Link:  rec.Link,
			Lines: make([]Line, 0, len(wrapped)+1),
		}
		rl.Lines = append(rl.Lines, Line{X: labelX, Y: y, Role: RoleLabel, Text: rec.Label})

		for _, text := range wrapped {
			rl.Lines = append(rl.Lines, Line{X: valueX, Y: y, Role: RoleValue, Text: text})
			y += cfg.LineHeightPx + cfg.InterLineGapPx
			lines++
		}

		l.Records = append(l.Records, rl)
	}

	l.Height = cfg.PaddingTopPx + cfg.PaddingBottomPx + blockTextHeight(cfg, lines)
	return l
}

// blockTextHeight is the vertical extent of n lines: n line heights plus the
// n-1 gaps between them.
func blockTextHeight(cfg style.Config, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*cfg.LineHeightPx + float64(n-1)*cfg.InterLineGapPx
}
