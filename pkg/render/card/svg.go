// Package card serializes a composed layout into embeddable artifacts.
//
// Sinks never decide geometry: every x/y offset and the total height come
// from the layout package. The sinks own presentation only — colors, font
// family, markup escaping.
package card

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/feedcard/feedcard/pkg/layout"
)

// Palette holds the card's colors. Values are any CSS color accepted by SVG.
type Palette struct {
	Background string
	Border     string
	Label      string
	Value      string
}

// DefaultPalette matches the muted GitHub-readme look.
var DefaultPalette = Palette{
	Background: "#fffefe",
	Border:     "#e4e2e2",
	Label:      "#636363",
	Value:      "#24292f",
}

const (
	fontFamily   = "'Segoe UI', Ubuntu, Sans-Serif"
	fontSizePx   = 13
	labelWeight  = 600
	cornerRadius = 4.5
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title   string
	palette Palette
}

// WithTitle sets the accessible <title> element on the SVG root.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithPalette overrides the default colors.
func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// RenderSVG serializes the layout as a standalone SVG document. Records that
// carry a link are wrapped in an <a> element; all text content and attribute
// values are XML-escaped here, so upstream stages never deal with markup.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" role="img">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}

	renderDefs(&buf, r.palette)
	fmt.Fprintf(&buf, `  <rect class="card" x="0.5" y="0.5" width="%.1f" height="%.1f" rx="%.1f"/>`+"\n",
		l.Width-1, l.Height-1, cornerRadius)

	for _, rec := range l.Records {
		renderRecord(&buf, rec)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, p Palette) {
	fmt.Fprintf(buf, `  <style>
    .card { fill: %s; stroke: %s; stroke-width: 1; }
    text { font-family: %s; font-size: %dpx; }
    .label { fill: %s; font-weight: %d; }
    .value { fill: %s; }
  </style>
`, p.Background, p.Border, fontFamily, fontSizePx, p.Label, labelWeight, p.Value)
}

func renderRecord(buf *bytes.Buffer, rec layout.RecordLayout) {
	if rec.Link != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`+"\n", escape(rec.Link))
	}
	for _, line := range rec.Lines {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" class="%s">%s</text>`+"\n",
			line.X, line.Y, line.Role, escape(line.Text))
	}
	if rec.Link != "" {
		buf.WriteString("  </a>\n")
	}
}

// escape XML-escapes text for element content and attribute values.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
