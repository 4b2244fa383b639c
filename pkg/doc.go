// Package pkg provides the core libraries for building the feedcard.
//
// # Overview
//
// Feedcard turns public activity feeds — a reading log, a film diary, and a
// scrobbler — into a single embeddable "last read / last watched / now
// listening" card. The typical data flow:
//
//	Goodreads RSS / Letterboxd RSS / Last.fm JSON
//	         ↓
//	    [integrations] (fetch, cache, retry)
//	         ↓
//	    [normalize] (title heuristics → records)
//	         ↓
//	    [textfit] + [layout] (character budgets, wrapping, geometry)
//	         ↓
//	    [render/card] (SVG / JSON artifacts)
//
// # Main Packages
//
// [style] - Layout configuration: block width, label column, line metrics,
// and the character-budget heuristics, loaded from TOML or defaults.
//
// [normalize] - Per-domain title parsing. Book titles split on " by ", movie
// titles canonicalize to "Title (YYYY)", tracks decode the scrobbler's
// flexible JSON shapes. Malformed input degrades to placeholder records.
//
// [textfit] - Pixel-to-character estimation and constrained wrapping. The
// attribution chunk is protected: it moves whole to a continuation line and
// is never split mid-word.
//
// [layout] - Composes records into positioned lines and computes the card's
// height from its line count.
//
// [render/card] - Serialization sinks (SVG, JSON). Sinks own presentation
// only; geometry always comes from the layout.
//
// [pipeline] - Orchestration shared by the CLI and serve mode: concurrent
// fetch with per-feed failure isolation, then layout and render.
//
// [integrations] - HTTP clients for the three feed providers, built on a
// shared caching and retrying base client.
//
// [cache] - File, redis, and null cache backends behind one interface.
//
// # Quick Start
//
// Fetch, lay out, and render a card:
//
//	backend, _ := cache.NewFileCache("")
//	runner := pipeline.NewRunner(backend, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Sources: style.Sources{GoodreadsUser: "12345"},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pkg
