package card

import (
	"encoding/json"

	"github.com/feedcard/feedcard/pkg/layout"
)

// JSONOption configures RenderJSON.
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title  string
	pretty bool
}

// WithJSONTitle records the card title in the JSON output.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

// WithJSONIndent pretty-prints the output for human inspection.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.pretty = true } }

type jsonOutput struct {
	Title   string                `json:"title,omitempty"`
	Width   float64               `json:"width"`
	Height  float64               `json:"height"`
	Records []layout.RecordLayout `json:"records"`
}

// RenderJSON serializes the layout geometry as JSON. The output mirrors what
// the SVG sink draws and is meant for tooling and tests, not for re-import.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:   r.title,
		Width:   l.Width,
		Height:  l.Height,
		Records: l.Records,
	}
	if r.pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
