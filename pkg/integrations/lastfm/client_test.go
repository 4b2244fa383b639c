package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feedcard/feedcard/pkg/integrations"
)

func TestClient_FetchRecent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("method") != "user.getrecenttracks" {
			t.Errorf("method = %q", q.Get("method"))
		}
		if q.Get("user") != "listener" || q.Get("api_key") != "secret" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("limit") != "1" || q.Get("format") != "json" {
			t.Errorf("unexpected query: %v", q)
		}
		fmt.Fprint(w, `{"recenttracks": {"track": [
			{"name": "Teardrop", "artist": {"#text": "Massive Attack"}, "url": "https://last.fm/t/1"},
			{"name": "Older Song", "artist": {"#text": "Whoever"}}
		]}}`)
	}))
	defer server.Close()

	c := testClient(server.URL)
	raw, err := c.FetchRecent(context.Background(), "listener", "secret", true)
	if err != nil {
		t.Fatalf("FetchRecent failed: %v", err)
	}

	var track struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &track); err != nil {
		t.Fatalf("returned track is not a JSON object: %v", err)
	}
	if track.Name != "Teardrop" {
		t.Errorf("track name = %q, want the first entry", track.Name)
	}
}

func TestClient_FetchRecent_SingleObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recenttracks": {"track": {"name": "Only Song", "artist": "Solo"}}}`)
	}))
	defer server.Close()

	c := testClient(server.URL)
	raw, err := c.FetchRecent(context.Background(), "listener", "secret", true)
	if err != nil {
		t.Fatalf("FetchRecent failed: %v", err)
	}

	var track struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &track); err != nil {
		t.Fatal(err)
	}
	if track.Name != "Only Song" {
		t.Errorf("track name = %q, want bare object accepted", track.Name)
	}
}

func TestClient_FetchRecent_NoScrobbles(t *testing.T) {
	responses := []string{
		`{"recenttracks": {"track": []}}`,
		`{"recenttracks": {}}`,
	}

	for _, resp := range responses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, resp)
		}))

		c := testClient(server.URL)
		_, err := c.FetchRecent(context.Background(), "listener", "secret", true)
		if !errors.Is(err, integrations.ErrEmptyFeed) {
			t.Errorf("response %s: expected ErrEmptyFeed, got %v", resp, err)
		}
		server.Close()
	}
}

func TestClient_FetchRecent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API reports bad keys with a 200 and an error envelope.
		fmt.Fprint(w, `{"error": 6, "message": "User not found"}`)
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.FetchRecent(context.Background(), "listener", "secret", true)
	if err == nil {
		t.Fatal("expected error for API error envelope")
	}
}

func TestClient_FetchRecent_RequiresUserAndKey(t *testing.T) {
	c := testClient("http://unused")

	if _, err := c.FetchRecent(context.Background(), "", "secret", true); err == nil {
		t.Error("expected error for empty user")
	}
	if _, err := c.FetchRecent(context.Background(), "listener", "", true); err == nil {
		t.Error("expected error for empty api key")
	}
}

func TestFirstTrack(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"array", `[{"name": "A"}, {"name": "B"}]`, `{"name": "A"}`, nil},
		{"object", `{"name": "A"}`, `{"name": "A"}`, nil},
		{"empty array", `[]`, "", integrations.ErrEmptyFeed},
		{"absent", ``, "", integrations.ErrEmptyFeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := firstTrack(json.RawMessage(tt.raw))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("firstTrack() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("firstTrack() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("firstTrack() = %s, want %s", got, tt.want)
			}
		})
	}
}

func testClient(serverURL string) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, "lastfm:", time.Hour, nil),
		baseURL: serverURL,
	}
}
