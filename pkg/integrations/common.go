// Package integrations provides the HTTP clients for the external feeds.
//
// Each feed has its own subpackage (goodreads, letterboxd, lastfm) built on
// the shared [Client], which layers response caching and retry with backoff
// over a plain http.Client. Clients report failures through sentinel errors;
// the pipeline maps any failure to a placeholder record, so a broken feed
// never takes the card down.
package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/feedcard/feedcard/pkg/buildinfo"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the feed or user doesn't exist (404).
	ErrNotFound = errors.New("feed not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrEmptyFeed is returned when a feed exists but carries no items.
	ErrEmptyFeed = errors.New("feed has no items")
)

// NewHTTPClient creates an HTTP client with the standard feed-fetch timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// UserAgent identifies feedcard to the feed providers, as several of them
// reject requests without one.
func UserAgent() string {
	return "feedcard/" + buildinfo.Version
}

// URLEncode percent-encodes a string for use in query parameters.
func URLEncode(s string) string { return url.QueryEscape(s) }
