// Package goodreads fetches the most recent book from a Goodreads shelf RSS
// feed.
package goodreads

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/feedcard/feedcard/pkg/cache"
	"github.com/feedcard/feedcard/pkg/errors"
	"github.com/feedcard/feedcard/pkg/feed"
	"github.com/feedcard/feedcard/pkg/integrations"
)

// DefaultShelf is the shelf read when none is configured.
const DefaultShelf = "read"

// Client fetches Goodreads shelf RSS feeds. Safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Goodreads client with the given cache backend and TTL.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "goodreads:", ttl, nil),
		baseURL: "https://www.goodreads.com",
	}
}

// rssDoc mirrors the shelf RSS shape down to the fields the normalizer can
// use. The author arrives both as Goodreads' own <author_name> element and,
// in some feed variants, as dc:creator; both are kept as fallbacks.
type rssDoc struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title      string `xml:"title"`
	Link       string `xml:"link"`
	AuthorName string `xml:"author_name"`
	Creator    string `xml:"creator"`
}

// FetchLatest returns the newest item on the user's shelf. An empty shelf
// name falls back to [DefaultShelf].
//
// Returns [integrations.ErrEmptyFeed] when the shelf has no entries, and
// [integrations.ErrNotFound] / [integrations.ErrNetwork] for HTTP failures.
func (c *Client) FetchLatest(ctx context.Context, user, shelf string, refresh bool) (*feed.Item, error) {
	if err := errors.ValidateFeedUser(user); err != nil {
		return nil, fmt.Errorf("goodreads: %w", err)
	}
	if shelf == "" {
		shelf = DefaultShelf
	}

	url := fmt.Sprintf("%s/review/list_rss/%s?shelf=%s",
		c.baseURL, integrations.URLEncode(user), integrations.URLEncode(shelf))
	body, err := c.Fetch(ctx, url, refresh)
	if err != nil {
		return nil, fmt.Errorf("goodreads shelf %s/%s: %w", user, shelf, err)
	}

	var doc rssDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("goodreads: decode feed: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("goodreads shelf %s/%s: %w", user, shelf, integrations.ErrEmptyFeed)
	}

	first := doc.Items[0]
	return &feed.Item{
		Title:      first.Title,
		Link:       first.Link,
		AuthorName: first.AuthorName,
		Creator:    first.Creator,
	}, nil
}
