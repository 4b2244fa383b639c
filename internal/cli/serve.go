package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/feedcard/feedcard/pkg/cache"
	"github.com/feedcard/feedcard/pkg/pipeline"
	"github.com/feedcard/feedcard/pkg/style"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config    string
	addr      string
	redisAddr string        // optional redis backend for multi-instance deployments
	maxAge    time.Duration // Cache-Control max-age on the SVG response
	title     string
}

func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the card over HTTP",
		Long: `Serve exposes the rendered card at /card.svg so it can be hotlinked from a
profile README. Feed responses are cached between requests; pass --redis to
share the cache across instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "feedcard.toml", "config file (TOML)")
	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared cache (host:port)")
	cmd.Flags().DurationVar(&opts.maxAge, "max-age", 5*time.Minute, "Cache-Control max-age for the SVG response")
	cmd.Flags().StringVar(&opts.title, "title", "", "card title")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	file, err := style.Load(opts.config)
	if err != nil {
		return err
	}

	backend, err := serveCache(ctx, opts.redisAddr)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer backend.Close()

	runner := pipeline.NewRunner(backend, logger)
	pipeOpts := pipeline.Options{
		Sources:      file.Sources,
		Style:        file.Style,
		Title:        opts.title,
		Formats:      []string{pipeline.FormatSVG},
		LastFMAPIKey: os.Getenv(envAPIKey),
	}
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/card.svg", cardHandler(runner, pipeOpts, opts.maxAge))

	srv := &http.Server{Addr: opts.addr, Handler: r}

	// Shut the server down when the signal context is cancelled.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving card", "addr", opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// cardHandler renders the card per request. Upstream load is bounded by the
// response cache, so rendering on demand keeps the card as fresh as the
// feed TTLs allow.
func cardHandler(runner *pipeline.Runner, opts pipeline.Options, maxAge time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		result, err := runner.Execute(req.Context(), opts)
		if err != nil {
			http.Error(w, "card unavailable", http.StatusInternalServerError)
			return
		}
		svg := result.Artifacts[pipeline.FormatSVG]

		etag := `"` + cache.Hash(svg) + `"`
		if req.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
		w.Header().Set("ETag", etag)
		_, _ = w.Write(svg)
	}
}

// requestLogger logs each request with a generated request ID.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			id := uuid.NewString()
			next.ServeHTTP(w, req)
			logger.Debug("request",
				"id", id,
				"method", req.Method,
				"path", req.URL.Path,
				"duration", time.Since(start))
		})
	}
}

// serveCache picks the cache backend: redis when configured, the file cache
// otherwise.
func serveCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return cache.NewFileCache("")
}
