package card

import (
	"strings"
	"testing"

	"github.com/feedcard/feedcard/pkg/layout"
	"github.com/feedcard/feedcard/pkg/normalize"
	"github.com/feedcard/feedcard/pkg/style"
)

func testLayout() layout.Layout {
	return layout.Compose(style.Default(), []normalize.Record{
		{Kind: normalize.Read, Label: "Last Read", Primary: "Dune",
			Secondary: "Frank Herbert", Link: "https://example.com/book?id=1&ref=card"},
		{Kind: normalize.Watched, Label: "Last Watched", Primary: "Hamnet (2025)"},
	})
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 400.0`,
		`class="label">Last Read</text>`,
		`class="value">Dune — Frank Herbert</text>`,
		`class="value">Hamnet (2025)</text>`,
		`<rect class="card"`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGTitle(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithTitle("What I'm Up To")))
	if !strings.Contains(svg, "<title>What I&#39;m Up To</title>") {
		t.Errorf("SVG missing escaped title element:\n%s", svg)
	}

	if strings.Contains(string(RenderSVG(testLayout())), "<title>") {
		t.Error("SVG has a title element without WithTitle")
	}
}

func TestRenderSVGLinks(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	if !strings.Contains(svg, `<a href="https://example.com/book?id=1&amp;ref=card"`) {
		t.Error("linked record not wrapped in an escaped <a> element")
	}
	if got := strings.Count(svg, "<a "); got != 1 {
		t.Errorf("%d <a> elements, want 1 (only the linked record)", got)
	}
	if got := strings.Count(svg, "</a>"); got != 1 {
		t.Errorf("%d </a> closers, want 1", got)
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	l := layout.Compose(style.Default(), []normalize.Record{
		{Kind: normalize.Read, Label: "Last Read", Primary: "Alice & Bob <3"},
	})

	svg := string(RenderSVG(l))
	if strings.Contains(svg, "Alice & Bob <3") {
		t.Error("text content not escaped")
	}
	if !strings.Contains(svg, "Alice &amp; Bob &lt;3") {
		t.Errorf("expected escaped text, got:\n%s", svg)
	}
}

func TestRenderSVGPalette(t *testing.T) {
	p := Palette{Background: "#000000", Border: "#111111", Label: "#222222", Value: "#333333"}
	svg := string(RenderSVG(testLayout(), WithPalette(p)))

	for _, color := range []string{"#000000", "#111111", "#222222", "#333333"} {
		if !strings.Contains(svg, color) {
			t.Errorf("SVG missing palette color %s", color)
		}
	}
	if strings.Contains(svg, DefaultPalette.Background) {
		t.Error("default palette leaked through WithPalette")
	}
}

func TestRenderSVGDimensions(t *testing.T) {
	l := testLayout()
	svg := string(RenderSVG(l))

	if !strings.Contains(svg, `width="400"`) {
		t.Error("SVG missing width attribute")
	}
	// Two single-line records: 20 + 20 + 2*18 + 6 = 82.
	if l.Height != 82 {
		t.Fatalf("layout height = %v, want 82", l.Height)
	}
	if !strings.Contains(svg, `height="82"`) {
		t.Errorf("SVG missing height attribute:\n%s", svg)
	}
}
