package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feedcard/feedcard/pkg/cache"
	"github.com/feedcard/feedcard/pkg/pipeline"
	"github.com/feedcard/feedcard/pkg/style"
)

// envAPIKey names the environment variable holding the Last.fm API key.
// The key never lives in the config file.
const envAPIKey = "FEEDCARD_LASTFM_API_KEY"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config     string // config file path (style + sources)
	output     string // output file path ("-" for stdout)
	formats    string // comma-separated output formats
	title      string // card title
	width      float64
	refresh    bool // bypass the response cache
	noCache    bool // disable caching entirely
	preview    bool // print a terminal rendition after writing
	goodreads  string
	shelf      string
	letterboxd string
	lastfm     string
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the feeds and render the card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "card.svg", "output file, or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "card title (SVG <title> element)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "card width in pixels (overrides config)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached feed responses")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "print a terminal preview of the card")
	cmd.Flags().StringVar(&opts.goodreads, "goodreads", "", "Goodreads user ID (overrides config)")
	cmd.Flags().StringVar(&opts.shelf, "goodreads-shelf", "", "Goodreads shelf name")
	cmd.Flags().StringVar(&opts.letterboxd, "letterboxd", "", "Letterboxd username (overrides config)")
	cmd.Flags().StringVar(&opts.lastfm, "lastfm", "", "Last.fm username (overrides config)")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	pipeOpts, err := buildOptions(opts)
	if err != nil {
		return err
	}
	pipeOpts.Logger = logger

	backend, err := openCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer backend.Close()

	prog := newProgress(logger)
	runner := pipeline.NewRunner(backend, logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done("pipeline finished")

	for _, rec := range result.Records {
		if rec.Err != nil {
			printError("%s feed unavailable: %v", rec.Record.Kind, rec.Err)
		}
	}

	if err := writeArtifacts(opts.output, result.Artifacts); err != nil {
		return err
	}

	if opts.preview {
		fmt.Println(renderTerminalCard(result.Layout, 20))
	}
	return nil
}

// buildOptions merges the config file (if any) with flag overrides.
func buildOptions(opts *renderOpts) (pipeline.Options, error) {
	var file style.File
	if opts.config != "" {
		var err error
		if file, err = style.Load(opts.config); err != nil {
			return pipeline.Options{}, err
		}
	}

	if opts.goodreads != "" {
		file.Sources.GoodreadsUser = opts.goodreads
	}
	if opts.shelf != "" {
		file.Sources.GoodreadsShelf = opts.shelf
	}
	if opts.letterboxd != "" {
		file.Sources.LetterboxdUser = opts.letterboxd
	}
	if opts.lastfm != "" {
		file.Sources.LastFMUser = opts.lastfm
	}
	if opts.width != 0 {
		file.Style.BlockWidthPx = opts.width
	}

	return pipeline.Options{
		Sources:      file.Sources,
		Style:        file.Style,
		Title:        opts.title,
		Formats:      parseFormats(opts.formats),
		Refresh:      opts.refresh,
		LastFMAPIKey: os.Getenv(envAPIKey),
	}, nil
}

// parseFormats parses the --format flag. If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// openCache returns the response cache backend: the file cache by default,
// or a null cache when caching is disabled.
func openCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache("")
}

// writeArtifacts writes each rendered format. With a single format the
// output path is used as-is; with several, the format's extension replaces
// the path's. Output "-" streams everything to stdout.
func writeArtifacts(output string, artifacts map[string][]byte) error {
	if output == "-" {
		for _, data := range artifacts {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
		}
		return nil
	}

	for format, data := range artifacts {
		path := output
		if len(artifacts) > 1 {
			path = strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("Wrote %s (%d bytes)", path, len(data))
	}
	return nil
}
