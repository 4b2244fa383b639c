// Package normalize turns raw feed items into uniform display records.
//
// Each of the three feed domains has its own constructor ([Book], [Movie],
// [Track]) that applies that domain's title heuristics and produces a
// [Record] with a primary value (the work) and an optional secondary value
// (the attribution). Normalization never fails: malformed or missing input
// degrades to a placeholder record rather than an error.
package normalize

import "strings"

// Placeholder is rendered when a feed yields no usable primary value. A
// missing secondary is simply omitted; only the primary falls back to the
// dash.
const Placeholder = "—"

// Kind classifies a record by feed domain.
type Kind int

const (
	Read Kind = iota
	Watched
	Listened
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Read:
		return "read"
	case Watched:
		return "watched"
	case Listened:
		return "listened"
	}
	return "unknown"
}

// DefaultLabel returns the display label for the kind. The listening label
// varies with the now-playing flag and is overridden by [Track].
func (k Kind) DefaultLabel() string {
	switch k {
	case Read:
		return "Last Read"
	case Watched:
		return "Last Watched"
	case Listened:
		return "Last Listened To"
	}
	return ""
}

// Record is a normalized feed entry ready for layout. Primary is never
// empty; Secondary and Link may be. Records are immutable once constructed.
type Record struct {
	Kind      Kind
	Label     string
	Primary   string
	Secondary string
	Link      string
}

// Empty returns a placeholder record for the kind, used when a feed is
// missing, empty, or failed to fetch.
func Empty(k Kind) Record {
	return Record{Kind: k, Label: k.DefaultLabel(), Primary: Placeholder}
}

// clean trims whitespace and collapses internal runs of whitespace, so that
// feed titles with stray newlines or double spaces wrap predictably.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// orEmpty substitutes the placeholder for a blank primary value.
func orEmpty(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
