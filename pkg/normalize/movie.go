package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/feedcard/feedcard/pkg/feed"
)

// Viewing-log titles encode the release year in one of two shapes. The
// comma form is tried first because it is what the diary feed emits; it is
// left unanchored so stray text after the year is dropped with it. The
// parenthesized form keeps already-canonical titles idempotent.
var (
	yearCommaRE  = regexp.MustCompile(`^(.+?),\s*(\d{4})`)
	yearParenRE  = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)$`)
	ratingSuffix = " - "
)

// Movie normalizes a viewing-log item. The title's trailing rating segment
// (" - ★★★★" and similar) is stripped, then the release year is pulled out of
// either "Title, 2025" or "Title (2025)" and re-emitted canonically as
// "Title (2025)". Titles without a recognizable year pass through cleaned but
// otherwise untouched. A nil or empty item yields a placeholder record.
func Movie(item *feed.Item) Record {
	if item == nil {
		return Empty(Watched)
	}

	rec := Record{Kind: Watched, Label: Watched.DefaultLabel(), Link: item.Link}
	rec.Primary = orEmpty(ParseMovieTitle(item.Title))
	return rec
}

// ParseMovieTitle applies the viewing-log title heuristics and returns the
// canonical display title. It is exported separately because the heuristic is
// useful on bare strings in tests and tooling; [Movie] wraps it with record
// bookkeeping.
func ParseMovieTitle(raw string) string {
	title := clean(raw)
	if title == "" {
		return ""
	}

	// Ratings and annotations trail the first " - " separator.
	if idx := strings.Index(title, ratingSuffix); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}
	if title == "" {
		return ""
	}

	for _, re := range []*regexp.Regexp{yearCommaRE, yearParenRE} {
		if m := re.FindStringSubmatch(title); m != nil {
			return fmt.Sprintf("%s (%s)", strings.TrimSpace(m[1]), m[2])
		}
	}
	return title
}
