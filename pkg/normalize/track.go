package normalize

import (
	"encoding/json"
	"strings"
)

// Listening labels. Which one applies depends on the track's now-playing
// attribute, not on the kind alone.
const (
	LabelNowListening  = "Now Listening To"
	LabelLastListening = "Last Listened To"
)

// trackRecord mirrors the scrobbler's recent-track JSON. The artist field
// arrives either as a plain string or as an object, and the now-playing flag
// as a bool or the string "true", so both use lenient wrapper types.
type trackRecord struct {
	Name   string      `json:"name"`
	URL    string      `json:"url"`
	Artist artistField `json:"artist"`
	Attr   struct {
		NowPlaying boolish `json:"nowplaying"`
	} `json:"@attr"`
}

// artistField accepts "artist": "Name" as well as the nested
// {"name": ...} / {"#text": ...} object shapes.
type artistField string

func (a *artistField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = artistField(s)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
		Text string `json:"#text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unrecognized shape reads as no artist, not as a failure.
		*a = ""
		return nil
	}
	if obj.Name != "" {
		*a = artistField(obj.Name)
	} else {
		*a = artistField(obj.Text)
	}
	return nil
}

// boolish accepts true, "true", and "1" as truthy; everything else,
// including absence, is falsy.
type boolish bool

func (b *boolish) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = boolish(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.ToLower(strings.TrimSpace(s))
		*b = s == "true" || s == "1"
		return nil
	}

	*b = false
	return nil
}

// Track normalizes a raw recent-track JSON object. The label reflects
// whether the track is currently playing. Invalid or empty input yields a
// placeholder record, never an error.
func Track(data []byte) Record {
	rec := Empty(Listened)
	if len(data) == 0 {
		return rec
	}

	var t trackRecord
	if err := json.Unmarshal(data, &t); err != nil {
		return rec
	}

	rec.Primary = orEmpty(clean(t.Name))
	rec.Secondary = clean(string(t.Artist))
	rec.Link = strings.TrimSpace(t.URL)
	if bool(t.Attr.NowPlaying) {
		rec.Label = LabelNowListening
	}
	return rec
}
