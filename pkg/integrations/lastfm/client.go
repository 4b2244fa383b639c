// Package lastfm fetches the most recent scrobble from the Last.fm API.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feedcard/feedcard/pkg/cache"
	"github.com/feedcard/feedcard/pkg/errors"
	"github.com/feedcard/feedcard/pkg/integrations"
)

// Client fetches recent tracks from the Last.fm API. Safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Last.fm client with the given cache backend and TTL.
// Scrobbles change often, so the TTL should be short (minutes, not hours).
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "lastfm:", ttl, nil),
		baseURL: "https://ws.audioscrobbler.com/2.0/",
	}
}

// recentTracks mirrors just enough of the user.getrecenttracks envelope.
// The track field is an array in practice but has been observed as a single
// object on fresh accounts, so it is decoded leniently.
type recentTracks struct {
	RecentTracks struct {
		Track json.RawMessage `json:"track"`
	} `json:"recenttracks"`
	// Error is set on API-level failures (bad key, unknown user).
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// FetchRecent returns the user's most recent track as raw JSON. The flexible
// decoding of the track object (artist shapes, now-playing flag) belongs to
// the normalizer; this client only peels the envelope.
//
// Returns [integrations.ErrEmptyFeed] when the user has no scrobbles.
func (c *Client) FetchRecent(ctx context.Context, user, apiKey string, refresh bool) ([]byte, error) {
	if err := errors.ValidateFeedUser(user); err != nil {
		return nil, fmt.Errorf("lastfm: %w", err)
	}
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingAPIKey, "lastfm: api key is required")
	}

	url := fmt.Sprintf("%s?method=user.getrecenttracks&user=%s&api_key=%s&format=json&limit=1",
		c.baseURL, integrations.URLEncode(user), integrations.URLEncode(apiKey))
	body, err := c.Fetch(ctx, url, refresh)
	if err != nil {
		return nil, fmt.Errorf("lastfm recent tracks %s: %w", user, err)
	}

	var envelope recentTracks
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("lastfm: decode response: %w", err)
	}
	if envelope.Error != 0 {
		return nil, fmt.Errorf("lastfm API error %d: %s", envelope.Error, envelope.Message)
	}

	track, err := firstTrack(envelope.RecentTracks.Track)
	if err != nil {
		return nil, fmt.Errorf("lastfm recent tracks %s: %w", user, err)
	}
	return track, nil
}

// firstTrack extracts the first track object from raw, which may be an
// array, a single object, or absent.
func firstTrack(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, integrations.ErrEmptyFeed
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, integrations.ErrEmptyFeed
		}
		return list[0], nil
	}

	// Not an array; accept a bare object.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("unexpected track shape: %w", err)
	}
	return raw, nil
}
