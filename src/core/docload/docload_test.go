package docload_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"paperqa/src/core/docload"
)

func TestAssemble(t *testing.T) {
	doc := docload.Assemble("paper.pdf", []string{"first page", "second", "第三頁"})

	if doc.Name != "paper.pdf" {
		t.Errorf("Name = %q, want %q", doc.Name, "paper.pdf")
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("Pages = %d, want 3", len(doc.Pages))
	}

	want := "first page\nsecond\n第三頁"
	if doc.Text != want {
		t.Errorf("Text = %q, want %q", doc.Text, want)
	}

	wantStarts := []int{0, 11, 18}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("page %d has number %d", i, page.Number)
		}
		if page.Start != wantStarts[i] {
			t.Errorf("page %d starts at %d, want %d", i+1, page.Start, wantStarts[i])
		}
	}

	// Every page's text is recoverable from its recorded offset.
	runes := []rune(doc.Text)
	for _, page := range doc.Pages {
		end := page.Start + utf8.RuneCountInString(page.Text)
		if got := string(runes[page.Start:end]); got != page.Text {
			t.Errorf("page %d text does not match its offset", page.Number)
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	doc := docload.Assemble("empty.pdf", nil)

	if doc.Text != "" {
		t.Errorf("Text = %q, want empty", doc.Text)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("Pages = %d, want 0", len(doc.Pages))
	}
	if got := doc.PageAt(0); got != 0 {
		t.Errorf("PageAt(0) = %d on empty document, want 0", got)
	}
}

func TestPageAt(t *testing.T) {
	doc := docload.Assemble("paper.pdf", []string{
		strings.Repeat("a", 10), // runes 0-9, separator at 10
		strings.Repeat("b", 5),  // runes 11-15, separator at 16
		strings.Repeat("c", 8),  // runes 17-24
	})

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "start of first page", offset: 0, want: 1},
		{name: "middle of first page", offset: 5, want: 1},
		{name: "separator belongs to previous page", offset: 10, want: 1},
		{name: "start of second page", offset: 11, want: 2},
		{name: "end of second page", offset: 15, want: 2},
		{name: "start of third page", offset: 17, want: 3},
		{name: "last rune", offset: 24, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.PageAt(tt.offset); got != tt.want {
				t.Errorf("PageAt(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}
