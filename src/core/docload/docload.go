package docload

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// Page is a single page of the source document.
type Page struct {
	Number int    // 1-based page number
	Text   string // extracted plain text
	Start  int    // rune offset of the page within Document.Text
}

// Document is the ingested paper. It is built once at startup and never
// mutated afterwards.
type Document struct {
	ID    string
	Name  string
	Pages []Page
	Text  string
}

// PageAt returns the page number containing the given rune offset.
func (d *Document) PageAt(offset int) int {
	if len(d.Pages) == 0 {
		return 0
	}
	i := sort.Search(len(d.Pages), func(i int) bool {
		return d.Pages[i].Start > offset
	})
	return d.Pages[i-1].Number
}

// Source supplies the raw bytes of the document to ingest.
type Source interface {
	// Fetch returns the document bytes and a display name for it.
	Fetch(ctx context.Context) ([]byte, string, error)
}

// Loader reads a PDF from a Source into a Document.
type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load fetches the PDF, extracts per-page plain text and assembles the
// Document. Unreadable documents fail here, before the server starts.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	data, name, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", name, err)
	}

	pageTexts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", i, name, err)
		}
		pageTexts = append(pageTexts, text)
	}

	doc := Assemble(name, pageTexts)
	doc.ID = uuid.NewSHA1(uuid.NameSpaceURL, data).String()
	return doc, nil
}

// Assemble builds a Document from already-extracted page texts, recording
// the rune offset at which each page begins. Pages are joined with a
// newline so a chunk never runs two pages together without a boundary.
func Assemble(name string, pageTexts []string) *Document {
	var sb strings.Builder
	pages := make([]Page, 0, len(pageTexts))

	offset := 0
	for i, text := range pageTexts {
		if i > 0 {
			sb.WriteString("\n")
			offset++
		}
		pages = append(pages, Page{
			Number: i + 1,
			Text:   text,
			Start:  offset,
		})
		sb.WriteString(text)
		offset += utf8.RuneCountInString(text)
	}

	return &Document{
		Name:  name,
		Pages: pages,
		Text:  sb.String(),
	}
}
