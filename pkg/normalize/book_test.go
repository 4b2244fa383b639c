package normalize

import (
	"testing"

	"github.com/feedcard/feedcard/pkg/feed"
)

func TestBook(t *testing.T) {
	tests := []struct {
		name          string
		item          *feed.Item
		wantPrimary   string
		wantSecondary string
	}{
		{
			name:          "title with by delimiter",
			item:          &feed.Item{Title: "The Little Prince by Antoine de Saint-Exupéry"},
			wantPrimary:   "The Little Prince",
			wantSecondary: "Antoine de Saint-Exupéry",
		},
		{
			name:          "delimiter matched case-insensitively",
			item:          &feed.Item{Title: "Dune BY Frank Herbert"},
			wantPrimary:   "Dune",
			wantSecondary: "Frank Herbert",
		},
		{
			// U+0130 lowercases to two runes, so offsets found on a
			// lowered copy of the title would not line up with the
			// original bytes.
			name:          "rune that grows under lowercasing",
			item:          &feed.Item{Title: "İstanbul by Orhan Pamuk"},
			wantPrimary:   "İstanbul",
			wantSecondary: "Orhan Pamuk",
		},
		{
			name:          "first delimiter wins",
			item:          &feed.Item{Title: "Death by Water by Kenzaburō Ōe"},
			wantPrimary:   "Death",
			wantSecondary: "Water by Kenzaburō Ōe",
		},
		{
			name:          "no delimiter falls back to author field",
			item:          &feed.Item{Title: "Kafka on the Shore", AuthorName: "Haruki Murakami"},
			wantPrimary:   "Kafka on the Shore",
			wantSecondary: "Haruki Murakami",
		},
		{
			name:          "creator consulted after author",
			item:          &feed.Item{Title: "Beloved", Creator: "Toni Morrison"},
			wantPrimary:   "Beloved",
			wantSecondary: "Toni Morrison",
		},
		{
			name:          "author outranks creator",
			item:          &feed.Item{Title: "Beloved", AuthorName: "Toni Morrison", Creator: "someone else"},
			wantPrimary:   "Beloved",
			wantSecondary: "Toni Morrison",
		},
		{
			name:          "no delimiter and no creator",
			item:          &feed.Item{Title: "Anonymous Pamphlet"},
			wantPrimary:   "Anonymous Pamphlet",
			wantSecondary: "",
		},
		{
			name:          "trailing by is not a split",
			item:          &feed.Item{Title: "Stand by "},
			wantPrimary:   "Stand by",
			wantSecondary: "",
		},
		{
			name:          "whitespace collapsed before splitting",
			item:          &feed.Item{Title: "  The   Trial \n by  Franz  Kafka "},
			wantPrimary:   "The Trial",
			wantSecondary: "Franz Kafka",
		},
		{
			name:        "empty title becomes placeholder",
			item:        &feed.Item{Title: "   "},
			wantPrimary: Placeholder,
		},
		{
			name:        "nil item becomes placeholder",
			item:        nil,
			wantPrimary: Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Book(tt.item)
			if rec.Kind != Read {
				t.Errorf("Kind = %v, want Read", rec.Kind)
			}
			if rec.Label != "Last Read" {
				t.Errorf("Label = %q, want %q", rec.Label, "Last Read")
			}
			if rec.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", rec.Primary, tt.wantPrimary)
			}
			if rec.Secondary != tt.wantSecondary {
				t.Errorf("Secondary = %q, want %q", rec.Secondary, tt.wantSecondary)
			}
		})
	}
}

func TestBookLink(t *testing.T) {
	rec := Book(&feed.Item{Title: "Dune by Frank Herbert", Link: "https://example.com/book/1"})
	if rec.Link != "https://example.com/book/1" {
		t.Errorf("Link = %q, want item link", rec.Link)
	}
}

func TestSplitTitleAuthorRejectsEmptyHalves(t *testing.T) {
	tests := []string{
		"by Frank Herbert",
		" by ",
	}
	for _, title := range tests {
		if _, _, ok := splitTitleAuthor(title); ok {
			t.Errorf("splitTitleAuthor(%q) split, want pass-through", title)
		}
	}
}
