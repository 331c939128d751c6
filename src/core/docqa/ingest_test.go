package docqa_test

import (
	"fmt"
	"strings"
	"testing"

	"paperqa/src/chunker"
	"paperqa/src/core/docload"
	"paperqa/src/core/docqa"
)

func TestIngestorChunks(t *testing.T) {
	doc := docload.Assemble("paper.pdf", []string{
		strings.Repeat("a", 30),
		strings.Repeat("b", 30),
		strings.Repeat("c", 30),
	})
	doc.ID = "doc"

	splitter, err := chunker.New(chunker.Config{Strategy: chunker.StrategyWindow, Size: 25, Overlap: 5})
	if err != nil {
		t.Fatalf("chunker.New() error = %v", err)
	}

	chunks, err := docqa.NewIngestor(splitter).Chunks(doc)
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("Chunks() returned no chunks")
	}

	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d has index %d", i, chunk.Index)
		}
		if want := fmt.Sprintf("doc-%d", i); chunk.ID != want {
			t.Errorf("chunk %d has ID %q, want %q", i, chunk.ID, want)
		}
		if chunk.DocumentID != "doc" {
			t.Errorf("chunk %d has document ID %q", i, chunk.DocumentID)
		}

		wantPage := doc.PageAt(chunk.Start)
		if chunk.Page != wantPage {
			t.Errorf("chunk %d attributed to page %d, PageAt(%d) = %d", i, chunk.Page, chunk.Start, wantPage)
		}

		wantText := string([]rune(doc.Text)[chunk.Start:chunk.End])
		if chunk.Text != wantText {
			t.Errorf("chunk %d text does not match its offsets", i)
		}
	}

	// The first chunk starts on page 1, the last must reach page 3.
	if chunks[0].Page != 1 {
		t.Errorf("first chunk on page %d, want 1", chunks[0].Page)
	}
	if last := chunks[len(chunks)-1]; last.Page != 3 {
		t.Errorf("last chunk on page %d, want 3", last.Page)
	}
}

func TestIngestorEmptyDocument(t *testing.T) {
	doc := docload.Assemble("empty.pdf", nil)
	doc.ID = "doc"

	splitter, err := chunker.New(chunker.Config{Size: 100, Overlap: 10})
	if err != nil {
		t.Fatalf("chunker.New() error = %v", err)
	}

	chunks, err := docqa.NewIngestor(splitter).Chunks(doc)
	if err != nil {
		t.Fatalf("Chunks() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("Chunks() = %d chunks for empty document, want 0", len(chunks))
	}
}
