package normalize

import "testing"

func TestTrack(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		wantLabel     string
		wantPrimary   string
		wantSecondary string
		wantLink      string
	}{
		{
			name: "artist as object with #text",
			data: `{"name": "Paranoid Android", "url": "https://last.fm/t/1",
				"artist": {"#text": "Radiohead"}}`,
			wantLabel:     LabelLastListening,
			wantPrimary:   "Paranoid Android",
			wantSecondary: "Radiohead",
			wantLink:      "https://last.fm/t/1",
		},
		{
			name:          "artist as object with name",
			data:          `{"name": "Flim", "artist": {"name": "Aphex Twin"}}`,
			wantLabel:     LabelLastListening,
			wantPrimary:   "Flim",
			wantSecondary: "Aphex Twin",
		},
		{
			name:          "artist as plain string",
			data:          `{"name": "Windowlicker", "artist": "Aphex Twin"}`,
			wantLabel:     LabelLastListening,
			wantPrimary:   "Windowlicker",
			wantSecondary: "Aphex Twin",
		},
		{
			name:          "now playing bool",
			data:          `{"name": "Teardrop", "artist": "Massive Attack", "@attr": {"nowplaying": true}}`,
			wantLabel:     LabelNowListening,
			wantPrimary:   "Teardrop",
			wantSecondary: "Massive Attack",
		},
		{
			name:          "now playing string true",
			data:          `{"name": "Teardrop", "artist": "Massive Attack", "@attr": {"nowplaying": "true"}}`,
			wantLabel:     LabelNowListening,
			wantPrimary:   "Teardrop",
			wantSecondary: "Massive Attack",
		},
		{
			name:          "now playing string false",
			data:          `{"name": "Teardrop", "artist": "Massive Attack", "@attr": {"nowplaying": "false"}}`,
			wantLabel:     LabelLastListening,
			wantPrimary:   "Teardrop",
			wantSecondary: "Massive Attack",
		},
		{
			name:        "missing name becomes placeholder",
			data:        `{"artist": "Somebody"}`,
			wantLabel:   LabelLastListening,
			wantPrimary: Placeholder,
			// A record with no primary still keeps its artist.
			wantSecondary: "Somebody",
		},
		{
			name:        "unrecognized artist shape reads as no artist",
			data:        `{"name": "Solo", "artist": 42}`,
			wantLabel:   LabelLastListening,
			wantPrimary: "Solo",
		},
		{
			name:        "empty input becomes placeholder",
			data:        "",
			wantLabel:   LabelLastListening,
			wantPrimary: Placeholder,
		},
		{
			name:        "malformed json becomes placeholder",
			data:        `{"name": `,
			wantLabel:   LabelLastListening,
			wantPrimary: Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Track([]byte(tt.data))
			if rec.Kind != Listened {
				t.Errorf("Kind = %v, want Listened", rec.Kind)
			}
			if rec.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", rec.Label, tt.wantLabel)
			}
			if rec.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", rec.Primary, tt.wantPrimary)
			}
			if rec.Secondary != tt.wantSecondary {
				t.Errorf("Secondary = %q, want %q", rec.Secondary, tt.wantSecondary)
			}
			if rec.Link != tt.wantLink {
				t.Errorf("Link = %q, want %q", rec.Link, tt.wantLink)
			}
		})
	}
}

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind  Kind
		str   string
		label string
	}{
		{Read, "read", "Last Read"},
		{Watched, "watched", "Last Watched"},
		{Listened, "listened", "Last Listened To"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("%v.String() = %q, want %q", tt.kind, got, tt.str)
		}
		if got := tt.kind.DefaultLabel(); got != tt.label {
			t.Errorf("%v.DefaultLabel() = %q, want %q", tt.kind, got, tt.label)
		}
	}
}

func TestEmpty(t *testing.T) {
	for _, k := range []Kind{Read, Watched, Listened} {
		rec := Empty(k)
		if rec.Primary != Placeholder {
			t.Errorf("Empty(%v).Primary = %q, want placeholder", k, rec.Primary)
		}
		if rec.Label != k.DefaultLabel() {
			t.Errorf("Empty(%v).Label = %q, want %q", k, rec.Label, k.DefaultLabel())
		}
		if rec.Secondary != "" || rec.Link != "" {
			t.Errorf("Empty(%v) has non-empty secondary or link", k)
		}
	}
}
