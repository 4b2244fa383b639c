package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedcard/feedcard/pkg/layout"
	"github.com/feedcard/feedcard/pkg/normalize"
	"github.com/feedcard/feedcard/pkg/style"
)

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat(FormatSVG))
	assert.NoError(t, ValidateFormat(FormatJSON))
	assert.Error(t, ValidateFormat("png"))
	assert.Error(t, ValidateFormat(""))
}

func TestValidateFormats(t *testing.T) {
	assert.NoError(t, ValidateFormats([]string{FormatSVG, FormatJSON}))
	assert.Error(t, ValidateFormats([]string{FormatSVG, "gif"}))
	assert.NoError(t, ValidateFormats(nil))
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{
		Sources: style.Sources{GoodreadsUser: "12345"},
	}
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, []string{FormatSVG}, opts.Formats)
	assert.Equal(t, style.DefaultBlockWidthPx, opts.Style.BlockWidthPx)
	assert.NotNil(t, opts.Logger)
}

func TestOptionsRequireASource(t *testing.T) {
	opts := Options{}
	err := opts.ValidateAndSetDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source")
}

func TestOptionsLastFMNeedsAPIKey(t *testing.T) {
	opts := Options{
		Sources: style.Sources{LastFMUser: "listener"},
	}
	assert.Error(t, opts.ValidateAndSetDefaults())

	opts = Options{
		Sources:      style.Sources{LastFMUser: "listener"},
		LastFMAPIKey: "secret",
	}
	assert.NoError(t, opts.ValidateAndSetDefaults())
}

func TestOptionsRejectBadFormat(t *testing.T) {
	opts := Options{
		Sources: style.Sources{GoodreadsUser: "12345"},
		Formats: []string{"png"},
	}
	assert.Error(t, opts.ValidateAndSetDefaults())
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{
		Sources: style.Sources{GoodreadsUser: "12345"},
	}
	require.NoError(t, opts.ValidateAndSetDefaults())
	snapshot := opts.Formats
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, snapshot, opts.Formats)
}

func TestFetchUnconfiguredSourcesArePlaceholders(t *testing.T) {
	// Nothing is configured: all three feeds must come back as placeholders
	// with no error and no network traffic.
	r := NewRunner(nil, nil)
	opts := Options{
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	}

	results := r.Fetch(context.Background(), opts)

	require.Len(t, results, 3)
	kinds := []normalize.Kind{normalize.Read, normalize.Watched, normalize.Listened}
	for i, res := range results {
		assert.NoError(t, res.Err, "slot %d", i)
		assert.Equal(t, kinds[i], res.Record.Kind, "slot %d", i)
		assert.Equal(t, normalize.Placeholder, res.Record.Primary, "slot %d", i)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, log.NewWithOptions(io.Discard, log.Options{}))
	_, err := r.Execute(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
}

func TestRenderFormat(t *testing.T) {
	l := layout.Compose(style.Default(), []normalize.Record{
		{Kind: normalize.Read, Label: "Last Read", Primary: "Dune", Secondary: "Frank Herbert"},
	})

	svg, err := renderFormat(l, FormatSVG, "my card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg"))
	assert.Contains(t, string(svg), "<title>my card</title>")

	jsonOut, err := renderFormat(l, FormatJSON, "my card")
	require.NoError(t, err)
	assert.Contains(t, string(jsonOut), `"my card"`)

	_, err = renderFormat(l, "png", "")
	assert.Error(t, err)
}

func TestRecordsStripsErrors(t *testing.T) {
	results := []RecordResult{
		{Record: normalize.Empty(normalize.Read)},
		{Record: normalize.Record{Kind: normalize.Watched, Label: "Last Watched", Primary: "Hamnet (2025)"}},
	}

	recs := records(results)
	require.Len(t, recs, 2)
	assert.Equal(t, "Hamnet (2025)", recs[1].Primary)
}
