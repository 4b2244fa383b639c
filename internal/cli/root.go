package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/feedcard/feedcard/pkg/buildinfo"
)

// Execute runs the feedcard CLI and returns an error if any command fails.
//
// The root command wires up the subcommands (render, serve, tune, cache) and
// configures logging from the --verbose flag. The logger is attached to the
// command context and available to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	long := `feedcard fetches what you last read (Goodreads), last watched (Letterboxd),
and are listening to (Last.fm), normalizes the titles, and lays them out as a
fixed-width SVG card for embedding in a profile README.`

	root := &cobra.Command{
		Use:          "feedcard",
		Short:        "feedcard renders your reading, watching, and listening feeds as an SVG card",
		Long:         long,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTuneCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
