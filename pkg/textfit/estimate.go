// Package textfit decides how value text fits into the card's columns.
//
// It has two halves: the budget estimator, which converts pixel widths into
// approximate character counts using the configured average glyph width, and
// the constrained wrapper, which splits an oversized value across lines
// without ever severing the attribution chunk mid-word.
//
// The character estimate is a heuristic. It deliberately errs on the generous
// side (see the separator slack in [style.Config]) because a value that is
// wrapped unnecessarily looks worse than one that runs a few pixels long.
package textfit

import (
	"math"

	"github.com/feedcard/feedcard/pkg/style"
)

// minBudgetChars floors every computed budget so that a degenerate column
// width can never produce a zero or negative budget.
const minBudgetChars = 12

// Estimator converts pixel widths into character budgets for a given style.
type Estimator struct {
	cfg style.Config
}

// NewEstimator returns an estimator for the given validated config.
func NewEstimator(cfg style.Config) Estimator {
	return Estimator{cfg: cfg}
}

// CharsThatFit estimates how many characters fit in px pixels, never less
// than minBudgetChars.
func (e Estimator) CharsThatFit(px float64) int {
	n := int(math.Floor(px / e.cfg.AvgGlyphWidthPx))
	return max(n, minBudgetChars)
}

// FirstLineBudget is the character budget for a value's first line, which
// shares its row with the label column.
func (e Estimator) FirstLineBudget() int {
	return e.CharsThatFit(e.cfg.ValueWidthPx())
}

// ContLineBudget is the character budget for continuation lines. They carry
// no label prefix, so the full block width (minus horizontal padding) is
// available even though the text is drawn at the value column.
func (e Estimator) ContLineBudget() int {
	return e.CharsThatFit(e.cfg.BlockWidthPx - 2*e.cfg.PaddingXPx)
}

// Slack is the extra character allowance applied before deciding to wrap.
func (e Estimator) Slack() int {
	return e.cfg.SeparatorSlackChars
}
