// Package style defines the layout configuration for the feed card.
//
// A [Config] carries every numeric parameter the layout engine needs: block
// width, label column width, line heights, paddings, and the character-budget
// heuristics. It is constructed once (from [Default] or [Load]) and passed by
// value into the estimator, wrapper, and composer. There is no package-level
// mutable state.
package style

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values applied by [Config.Validate] for zero fields.
const (
	DefaultBlockWidthPx       = 400.0
	DefaultLabelColumnWidthPx = 128.0
	DefaultLabelGapPx         = 8.0
	DefaultInterLineGapPx     = 6.0
	DefaultLineHeightPx       = 18.0
	DefaultPaddingTopPx       = 20.0
	DefaultPaddingBottomPx    = 20.0
	DefaultPaddingXPx         = 16.0
	DefaultMaxLinesPerValue   = 2
	DefaultAvgGlyphWidthPx    = 7.2
	DefaultSeparatorSlack     = 2
)

// Config holds the card's layout parameters. All pixel values refer to the
// SVG coordinate space. Construct via [Default] or [Load], validate once, and
// pass by value; a Config is never mutated after validation.
type Config struct {
	// BlockWidthPx is the total card width.
	BlockWidthPx float64 `toml:"block_width"`

	// LabelColumnWidthPx is the width reserved for the label column. Values
	// start at this offset; continuation lines align to the same column.
	LabelColumnWidthPx float64 `toml:"label_column_width"`

	// LabelGapPx is the horizontal gap between the label column and the value.
	LabelGapPx float64 `toml:"label_gap"`

	// InterLineGapPx is the vertical gap between consecutive text lines.
	InterLineGapPx float64 `toml:"inter_line_gap"`

	// LineHeightPx is the height of a single text line.
	LineHeightPx float64 `toml:"line_height"`

	PaddingTopPx    float64 `toml:"padding_top"`
	PaddingBottomPx float64 `toml:"padding_bottom"`
	PaddingXPx      float64 `toml:"padding_x"`

	// MaxLinesPerValue caps how many lines a single value may occupy.
	MaxLinesPerValue int `toml:"max_lines_per_value"`

	// AvgGlyphWidthPx is the assumed average glyph width used to convert
	// pixel widths into character budgets. This is a heuristic, not a
	// measurement; the card's font is close enough at small sizes.
	AvgGlyphWidthPx float64 `toml:"avg_glyph_width"`

	// SeparatorSlackChars is added to the first-line budget before deciding
	// to wrap. The estimate is deliberately generous so that values which
	// would still fit in the rendered font are not wrapped prematurely.
	SeparatorSlackChars int `toml:"separator_slack"`
}

// Sources identifies the feed accounts the card is built from. The Last.fm
// API key is intentionally absent: it comes from the FEEDCARD_LASTFM_API_KEY
// environment variable, never from a file.
type Sources struct {
	GoodreadsUser  string `toml:"goodreads_user"`
	GoodreadsShelf string `toml:"goodreads_shelf"`
	LetterboxdUser string `toml:"letterboxd_user"`
	LastFMUser     string `toml:"lastfm_user"`
}

// File is the on-disk configuration: layout parameters plus feed sources.
type File struct {
	Style   Config  `toml:"style"`
	Sources Sources `toml:"sources"`
}

// Default returns the stock card configuration.
func Default() Config {
	cfg := Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate applies defaults for zero fields and rejects negative or
// nonsensical values. It is idempotent and must be called before the config
// is handed to the layout engine.
func (c *Config) Validate() error {
	apply := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	apply(&c.BlockWidthPx, DefaultBlockWidthPx)
	apply(&c.LabelColumnWidthPx, DefaultLabelColumnWidthPx)
	apply(&c.LabelGapPx, DefaultLabelGapPx)
	apply(&c.InterLineGapPx, DefaultInterLineGapPx)
	apply(&c.LineHeightPx, DefaultLineHeightPx)
	apply(&c.PaddingTopPx, DefaultPaddingTopPx)
	apply(&c.PaddingBottomPx, DefaultPaddingBottomPx)
	apply(&c.PaddingXPx, DefaultPaddingXPx)
	apply(&c.AvgGlyphWidthPx, DefaultAvgGlyphWidthPx)
	if c.MaxLinesPerValue == 0 {
		c.MaxLinesPerValue = DefaultMaxLinesPerValue
	}
	if c.SeparatorSlackChars == 0 {
		c.SeparatorSlackChars = DefaultSeparatorSlack
	}

	switch {
	case c.BlockWidthPx < 0 || c.LabelColumnWidthPx < 0 || c.LabelGapPx < 0:
		return fmt.Errorf("style: widths must be positive")
	case c.InterLineGapPx < 0 || c.LineHeightPx < 0:
		return fmt.Errorf("style: line metrics must be positive")
	case c.PaddingTopPx < 0 || c.PaddingBottomPx < 0 || c.PaddingXPx < 0:
		return fmt.Errorf("style: paddings must be positive")
	case c.MaxLinesPerValue < 1:
		return fmt.Errorf("style: max_lines_per_value must be at least 1, got %d", c.MaxLinesPerValue)
	case c.AvgGlyphWidthPx <= 0:
		return fmt.Errorf("style: avg_glyph_width must be positive, got %v", c.AvgGlyphWidthPx)
	case c.SeparatorSlackChars < 0:
		return fmt.Errorf("style: separator_slack must not be negative, got %d", c.SeparatorSlackChars)
	case c.LabelColumnWidthPx+c.LabelGapPx+2*c.PaddingXPx >= c.BlockWidthPx:
		return fmt.Errorf("style: label column (%v) leaves no room for values in block width %v",
			c.LabelColumnWidthPx, c.BlockWidthPx)
	}
	return nil
}

// ValueWidthPx returns the horizontal space to the right of the label column,
// where a value's first line is drawn. Continuation lines are budgeted
// against the full content width instead, so this is a first-line width only.
func (c Config) ValueWidthPx() float64 {
	return c.BlockWidthPx - 2*c.PaddingXPx - c.LabelColumnWidthPx - c.LabelGapPx
}

// Load reads a [File] from a TOML file at path and validates the embedded
// style. Missing style fields pick up defaults; missing sources stay empty
// and are validated by the caller against what it actually needs.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return File{}, fmt.Errorf("config file %s: %w", path, err)
		}
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.Style.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal renders the config as TOML, suitable for writing a starter config
// file or echoing tuned values back to the user.
func (f File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
