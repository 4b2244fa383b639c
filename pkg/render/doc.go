// Package render contains the serialization sinks for composed layouts.
//
// Sinks never decide geometry: every offset and the total height come from
// the layout package, so all formats draw the same card.
//
// The [card] subpackage renders the feed card itself:
//
//	svg := card.RenderSVG(l, card.WithTitle("What I'm Up To"))
//	data, err := card.RenderJSON(l, card.WithJSONIndent())
//
// The SVG output is a standalone document meant for embedding in a GitHub
// README; the JSON output mirrors the same geometry for tooling and tests.
//
// [card]: github.com/feedcard/feedcard/pkg/render/card
package render
