package textfit

import "strings"

const (
	// separator joins primary and secondary in the single-line form. When
	// the value wraps, the secondary moves whole to its own line behind the
	// contPrefix; the separator itself is never a split point.
	separator  = " — "
	contPrefix = "— "

	// ellipsis is appended, as a single rune, when a line is truncated.
	ellipsis = "…"

	// minWordCut is the smallest acceptable word-boundary cut for a first
	// line. A boundary earlier than this would leave a degenerate one-word
	// line, so the wrapper hard-cuts at the budget instead.
	minWordCut = 20

	// placeholder stands in for values that are empty after trimming.
	placeholder = "—"
)

// Wrap lays the value out as 1..maxLines lines against the given character
// budgets. first is the budget for the line that shares a row with the label,
// cont the budget for continuation lines, and slack the extra allowance
// applied before deciding to wrap at all.
//
// The secondary chunk is protected: if the joined value does not fit on one
// line, the secondary is emitted whole on a continuation line behind "— ",
// ellipsized as a unit if it alone overflows, and never split mid-word.
func Wrap(primary, secondary string, first, cont, maxLines, slack int) []string {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)
	if maxLines < 1 {
		maxLines = 1
	}

	value := primary
	if secondary != "" {
		value = primary + separator + secondary
	}
	if strings.TrimSpace(value) == "" {
		return []string{placeholder}
	}

	// The common case: everything fits on one line, no wrapping attempted.
	if runeLen(value) <= first+slack || maxLines == 1 {
		if maxLines == 1 {
			return []string{ellipsize(value, first+slack, 0)}
		}
		return []string{value}
	}

	if secondary != "" {
		return wrapWithSecondary(primary, secondary, first, cont, slack)
	}
	return wrapPlain(value, first, cont, maxLines)
}

// wrapWithSecondary puts the primary on line 1 and the whole secondary on
// line 2. An oversized primary is word-wrapped to the first-line budget and
// its overflow discarded: the attribution outranks the tail of the title.
func wrapWithSecondary(primary, secondary string, first, cont, slack int) []string {
	line1 := primary
	if runeLen(primary) > first+slack {
		line1, _ = cutAtBudget(primary, first)
	}

	line2 := ellipsize(contPrefix+secondary, cont, runeLen(contPrefix)+1)
	return []string{line1, line2}
}

// wrapPlain word-wraps a value with no protected chunk, recursing on the
// remainder until it fits or maxLines is reached. The final line is
// ellipsized if the leftover still overflows.
func wrapPlain(value string, first, cont, maxLines int) []string {
	lines := make([]string, 0, maxLines)
	rest := value
	budget := first

	for len(lines) < maxLines-1 && runeLen(rest) > budget {
		var line string
		line, rest = cutAtBudget(rest, budget)
		if rest == "" {
			return append(lines, line)
		}
		lines = append(lines, line)
		budget = cont
	}

	if runeLen(rest) > budget {
		rest = ellipsize(rest, budget, 0)
	}
	return append(lines, rest)
}

// cutAtBudget splits s at the last space at or before budget runes. When the
// best boundary sits before minWordCut the split degenerates, so the cut is
// made hard at the budget instead. Both halves come back trimmed.
func cutAtBudget(s string, budget int) (line, rest string) {
	runes := []rune(s)
	if len(runes) <= budget {
		return strings.TrimSpace(s), ""
	}

	cut := budget
	if idx := lastSpaceBefore(runes, budget); idx >= minWordCut {
		cut = idx
	}
	return strings.TrimSpace(string(runes[:cut])), strings.TrimSpace(string(runes[cut:]))
}

// ellipsize truncates s to the budget, preferring the nearest word boundary
// at or before budget-1 as long as it is past minKeep, and appends the
// ellipsis rune. Values within budget come back unchanged.
func ellipsize(s string, budget, minKeep int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	if budget < 2 {
		return ellipsis
	}

	cut := budget - 1
	if idx := lastSpaceBefore(runes, budget-1); idx > minKeep {
		cut = idx
	}
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}

// lastSpaceBefore returns the index of the last space at or before limit, or
// -1 when there is none.
func lastSpaceBefore(runes []rune, limit int) int {
	for i := min(limit, len(runes)-1); i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func runeLen(s string) int {
	return len([]rune(s))
}
