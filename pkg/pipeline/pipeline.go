// Package pipeline orchestrates the fetch → normalize → layout → render flow.
//
// The [Runner] is shared by the CLI and the serve mode so both produce the
// same card for the same options. Stages:
//
//  1. Fetch: pull the three feeds concurrently; each failure is isolated and
//     degrades to a placeholder record.
//  2. Normalize: apply the per-domain title heuristics.
//  3. Layout: wrap values and compute geometry.
//  4. Render: serialize the requested formats.
//
// Normalization, layout, and render are pure and synchronous; only the fetch
// stage touches the network.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	ferrors "github.com/feedcard/feedcard/pkg/errors"
	"github.com/feedcard/feedcard/pkg/layout"
	"github.com/feedcard/feedcard/pkg/style"
)

// Defaults shared by the CLI and the serve mode.
const (
	// DefaultFeedTTL is how long RSS responses are cached. Reading and
	// viewing logs change rarely.
	DefaultFeedTTL = 30 * time.Minute

	// DefaultTrackTTL is how long the recent-track response is cached. Kept
	// short so "Now Listening To" does not go stale.
	DefaultTrackTTL = 2 * time.Minute
)

// Output format identifiers.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return ferrors.New(ferrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a pipeline run. The zero value is not usable: at least
// one source must be configured and defaults must be applied via
// [Options.ValidateAndSetDefaults].
type Options struct {
	// Sources selects the feed accounts. A source left empty is skipped and
	// rendered as a placeholder record.
	Sources style.Sources `json:"sources"`

	// Style is the card configuration; zero fields pick up defaults.
	Style style.Config `json:"style"`

	// Title is the card's accessible title.
	Title string `json:"title,omitempty"`

	// Formats selects the rendered outputs (default: svg).
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the response cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	LastFMAPIKey string      `json:"-"`
	Logger       *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent: calling it twice has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Sources == (style.Sources{}) {
		return ferrors.New(ferrors.ErrCodeMissingSource, "at least one feed source is required")
	}
	if o.Sources.LastFMUser != "" && o.LastFMAPIKey == "" {
		return ferrors.New(ferrors.ErrCodeMissingAPIKey,
			"lastfm user %q configured without an API key", o.Sources.LastFMUser)
	}
	if err := o.Style.Validate(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "card style")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records are the normalized feed entries, in card order.
	Records []RecordResult

	// Layout is the composed card geometry.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FetchTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}
