// Package letterboxd fetches the most recent entry from a Letterboxd diary
// RSS feed.
package letterboxd

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

// Client fetches Letterboxd diary RSS feeds. Safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Letterboxd client with the given cache backend and TTL.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "letterboxd:", ttl, nil),
		baseURL: "https://letterboxd.com",
	}
}

// Diary titles carry the year and rating inline ("Hamnet, 2025 - ★★★★"); the
// normalizer owns that parsing, so only title and link are lifted here.
type rssDoc struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	Creator string `xml:"creator"`
}

// FetchLatest returns the user's newest diary entry.
//
// Returns [integrations.ErrEmptyFeed] when the diary is empty, and
// [integrations.ErrNotFound] / [integrations.ErrNetwork] for HTTP failures.
func (c *Client) FetchLatest(ctx context.Context, user string, refresh bool) (*feed.Item, error) {
	if err := errors.ValidateFeedUser(user); err != nil {
		return nil, fmt.Errorf("letterboxd: %w", err)
	}

	url := fmt.Sprintf("%s/%s/rss/", c.baseURL, integrations.URLEncode(user))
	body, err := c.Fetch(ctx, url, refresh)
	if err != nil {
		return nil, fmt.Errorf("letterboxd diary %s: %w", user, err)
	}

	var doc rssDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("letterboxd: decode feed: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("letterboxd diary %s: %w", user, integrations.ErrEmptyFeed)
	}

	first := doc.Items[0]
	return &feed.Item{
		Title:   first.Title,
		Link:    first.Link,
		Creator: first.Creator,
	}, nil
}
