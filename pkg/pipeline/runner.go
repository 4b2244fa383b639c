package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/feedcard/feedcard/pkg/cache"
	"github.com/feedcard/feedcard/pkg/feed"
	"github.com/feedcard/feedcard/pkg/integrations"
	"github.com/feedcard/feedcard/pkg/integrations/goodreads"
	"github.com/feedcard/feedcard/pkg/integrations/lastfm"
	"github.com/feedcard/feedcard/pkg/integrations/letterboxd"
	"github.com/feedcard/feedcard/pkg/layout"
	"github.com/feedcard/feedcard/pkg/normalize"
	"github.com/feedcard/feedcard/pkg/render/card"
)

// RecordResult pairs a normalized record with the fetch error that produced
// it, if any. A non-nil Err means the record is a placeholder.
type RecordResult struct {
	Record normalize.Record
	Err    error
}

// Runner executes the pipeline. It is stateless apart from the cache and
// logger; one Runner can serve concurrent runs with different options.
type Runner struct {
	Logger *log.Logger

	books *goodreads.Client
	films *letterboxd.Client
	music *lastfm.Client
}

// NewRunner creates a runner over the given cache backend. A nil backend
// disables caching; a nil logger discards output.
func NewRunner(backend cache.Cache, logger *log.Logger) *Runner {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		books:  goodreads.NewClient(backend, DefaultFeedTTL),
		films:  letterboxd.NewClient(backend, DefaultFeedTTL),
		music:  lastfm.NewClient(backend, DefaultTrackTTL),
	}
}

// Execute runs the complete fetch → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	fetchStart := time.Now()
	result.Records = r.Fetch(ctx, opts)
	result.Stats.FetchTime = time.Since(fetchStart)

	layoutStart := time.Now()
	l := layout.Compose(opts.Style, records(result.Records))
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Info("composed layout",
		"lines", l.LineCount(),
		"height", l.Height,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	for _, format := range opts.Formats {
		artifact, err := renderFormat(l, format, opts.Title)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = artifact
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Fetch pulls the three feeds concurrently and normalizes each. A source
// left unconfigured, an empty feed, and a failed fetch all degrade to the
// kind's placeholder record; one broken feed never affects the others. The
// returned order is fixed: read, watched, listened.
func (r *Runner) Fetch(ctx context.Context, opts Options) []RecordResult {
	results := make([]RecordResult, 3)

	var wg sync.WaitGroup
	run := func(slot int, fetch func() RecordResult) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[slot] = fetch()
		}()
	}

	run(0, func() RecordResult { return r.fetchBook(ctx, opts) })
	run(1, func() RecordResult { return r.fetchMovie(ctx, opts) })
	run(2, func() RecordResult { return r.fetchTrack(ctx, opts) })
	wg.Wait()

	for _, res := range results {
		if res.Err != nil && !errors.Is(res.Err, integrations.ErrEmptyFeed) {
			opts.Logger.Warn("feed fetch failed, using placeholder",
				"source", feedSources[res.Record.Kind], "err", res.Err)
		}
	}
	return results
}

// feedSources maps a record kind back to the feed it came from, for logging.
var feedSources = map[normalize.Kind]feed.Source{
	normalize.Read:     feed.SourceBooks,
	normalize.Watched:  feed.SourceFilms,
	normalize.Listened: feed.SourceMusic,
}

func (r *Runner) fetchBook(ctx context.Context, opts Options) RecordResult {
	if opts.Sources.GoodreadsUser == "" {
		return RecordResult{Record: normalize.Empty(normalize.Read)}
	}
	item, err := r.books.FetchLatest(ctx, opts.Sources.GoodreadsUser, opts.Sources.GoodreadsShelf, opts.Refresh)
	if err != nil {
		return RecordResult{Record: normalize.Empty(normalize.Read), Err: err}
	}
	return RecordResult{Record: normalize.Book(item)}
}

func (r *Runner) fetchMovie(ctx context.Context, opts Options) RecordResult {
	if opts.Sources.LetterboxdUser == "" {
		return RecordResult{Record: normalize.Empty(normalize.Watched)}
	}
	item, err := r.films.FetchLatest(ctx, opts.Sources.LetterboxdUser, opts.Refresh)
	if err != nil {
		return RecordResult{Record: normalize.Empty(normalize.Watched), Err: err}
	}
	return RecordResult{Record: normalize.Movie(item)}
}

func (r *Runner) fetchTrack(ctx context.Context, opts Options) RecordResult {
	if opts.Sources.LastFMUser == "" {
		return RecordResult{Record: normalize.Empty(normalize.Listened)}
	}
	raw, err := r.music.FetchRecent(ctx, opts.Sources.LastFMUser, opts.LastFMAPIKey, opts.Refresh)
	if err != nil {
		return RecordResult{Record: normalize.Empty(normalize.Listened), Err: err}
	}
	return RecordResult{Record: normalize.Track(raw)}
}

func renderFormat(l layout.Layout, format, title string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return card.RenderSVG(l, card.WithTitle(title)), nil
	case FormatJSON:
		return card.RenderJSON(l, card.WithJSONTitle(title), card.WithJSONIndent())
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// records strips the fetch bookkeeping for the layout stage.
func records(results []RecordResult) []normalize.Record {
	recs := make([]normalize.Record, len(results))
	for i, res := range results {
		recs[i] = res.Record
	}
	return recs
}

func (r *Runner) applyLogger(opts *Options) {
	if r.Logger != nil {
		opts.Logger = r.Logger
	}
}
