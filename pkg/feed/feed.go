// Package feed defines the raw item types shared between the fetch layer and
// the normalizer. Items are loosely typed on purpose: the upstream feeds are
// inconsistent, and it is the normalizer's job to make sense of them.
package feed

// Source identifies which external feed an item came from.
type Source string

const (
	// SourceBooks is the reading log (Goodreads RSS).
	SourceBooks Source = "books"

	// SourceFilms is the viewing log (Letterboxd RSS).
	SourceFilms Source = "films"

	// SourceMusic is the listening log (Last.fm recent tracks).
	SourceMusic Source = "music"
)

// Item is a single raw feed entry. Title is the only field that is usually
// populated; the creator fields are filled when the feed exposes them and are
// consulted in declaration order when the title itself carries no attribution.
type Item struct {
	Title string
	Link  string

	// AuthorName is the feed's explicit author field (Goodreads
	// <author_name>). Preferred over Creator when both are present.
	AuthorName string

	// Creator is the generic dc:creator element some feeds carry.
	Creator string
}
