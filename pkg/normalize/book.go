package normalize

import (
	"strings"

	"github.com/feedcard/feedcard/pkg/feed"
)

// byDelimiter is the attribution delimiter in reading-log titles, matched
// case-insensitively. The first occurrence wins: splitting on a later match
// could sever an author name that itself contains "by".
const byDelimiter = " by "

// Book normalizes a reading-log item. Titles of the shape
// "The Little Prince by Antoine de Saint-Exupéry" are split into primary and
// secondary; when the title carries no delimiter, the item's explicit creator
// fields are consulted in order (AuthorName, then Creator). A nil or empty
// item yields a placeholder record.
func Book(item *feed.Item) Record {
	if item == nil {
		return Empty(Read)
	}

	rec := Record{Kind: Read, Label: Read.DefaultLabel(), Link: item.Link}
	title := clean(item.Title)
	if title == "" {
		rec.Primary = Placeholder
		return rec
	}

	if primary, secondary, ok := splitTitleAuthor(title); ok {
		rec.Primary = orEmpty(primary)
		rec.Secondary = secondary
		return rec
	}

	rec.Primary = title
	rec.Secondary = creatorOf(item)
	return rec
}

// splitTitleAuthor splits a title on the first case-insensitive " by ".
// Both halves are trimmed; the split is rejected if either side ends up
// empty, so a title that merely ends in "by" passes through unchanged.
func splitTitleAuthor(title string) (primary, secondary string, ok bool) {
	idx := indexFold(title, byDelimiter)
	if idx < 0 {
		return "", "", false
	}
	primary = strings.TrimSpace(title[:idx])
	secondary = strings.TrimSpace(title[idx+len(byDelimiter):])
	if primary == "" || secondary == "" {
		return "", "", false
	}
	return primary, secondary, true
}

// indexFold returns the byte offset of the first case-insensitive occurrence
// of the ASCII delimiter delim in s, or -1. The fold is applied window by
// window on the original string: lowering s up front can change its byte
// length (e.g. "İ" lowers to two runes), which would skew the offset.
func indexFold(s, delim string) int {
	for i := 0; i+len(delim) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(delim)], delim) {
			return i
		}
	}
	return -1
}

// creatorOf returns the first non-empty creator-like field on the item.
func creatorOf(item *feed.Item) string {
	for _, candidate := range []string{item.AuthorName, item.Creator} {
		if c := clean(candidate); c != "" {
			return c
		}
	}
	return ""
}
