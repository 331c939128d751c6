package chunker_test

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"paperqa/src/chunker"
)

func TestWindowSplit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		text    string
		want    []chunker.Span
	}{
		{
			name:    "text shorter than window",
			size:    10,
			overlap: 2,
			text:    "short",
			want: []chunker.Span{
				{Text: "short", Start: 0, End: 5},
			},
		},
		{
			name:    "exact window",
			size:    5,
			overlap: 2,
			text:    "abcde",
			want: []chunker.Span{
				{Text: "abcde", Start: 0, End: 5},
			},
		},
		{
			name:    "overlapping windows",
			size:    4,
			overlap: 2,
			text:    "abcdef",
			want: []chunker.Span{
				{Text: "abcd", Start: 0, End: 4},
				{Text: "cdef", Start: 2, End: 6},
			},
		},
		{
			name:    "short final window",
			size:    4,
			overlap: 1,
			text:    "abcdefgh",
			want: []chunker.Span{
				{Text: "abcd", Start: 0, End: 4},
				{Text: "defg", Start: 3, End: 7},
				{Text: "gh", Start: 6, End: 8},
			},
		},
		{
			name:    "no overlap",
			size:    3,
			overlap: 0,
			text:    "abcdef",
			want: []chunker.Span{
				{Text: "abc", Start: 0, End: 3},
				{Text: "def", Start: 3, End: 6},
			},
		},
		{
			name:    "multibyte runes use rune offsets",
			size:    3,
			overlap: 1,
			text:    "日本語のテキスト",
			want: []chunker.Span{
				{Text: "日本語", Start: 0, End: 3},
				{Text: "語のテ", Start: 2, End: 5},
				{Text: "テキス", Start: 4, End: 7},
				{Text: "スト", Start: 6, End: 8},
			},
		},
		{
			name:    "empty text",
			size:    10,
			overlap: 2,
			text:    "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splitter, err := chunker.New(chunker.Config{
				Strategy: chunker.StrategyWindow,
				Size:     tt.size,
				Overlap:  tt.overlap,
			})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			got, err := splitter.Split(tt.text)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWindowSplitCoversText(t *testing.T) {
	text := strings.Repeat("paper text ", 100)
	splitter, err := chunker.New(chunker.Config{Size: 64, Overlap: 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	spans, err := splitter.Split(text)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(spans) == 0 {
		t.Fatal("Split() returned no spans")
	}

	if spans[0].Start != 0 {
		t.Errorf("first span starts at %d, want 0", spans[0].Start)
	}
	if last := spans[len(spans)-1]; last.End != utf8.RuneCountInString(text) {
		t.Errorf("last span ends at %d, want %d", last.End, utf8.RuneCountInString(text))
	}

	runes := []rune(text)
	for i, span := range spans {
		if span.Text != string(runes[span.Start:span.End]) {
			t.Errorf("span %d text does not match its offsets", i)
		}
		if i == 0 {
			continue
		}
		prev := spans[i-1]
		if got := prev.End - span.Start; got != 16 {
			t.Errorf("span %d overlaps predecessor by %d runes, want 16", i, got)
		}
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  chunker.Config
	}{
		{name: "zero size", cfg: chunker.Config{Size: 0, Overlap: 0}},
		{name: "negative size", cfg: chunker.Config{Size: -1, Overlap: 0}},
		{name: "negative overlap", cfg: chunker.Config{Size: 10, Overlap: -1}},
		{name: "overlap equals size", cfg: chunker.Config{Size: 10, Overlap: 10}},
		{name: "overlap exceeds size", cfg: chunker.Config{Size: 10, Overlap: 20}},
		{name: "unknown strategy", cfg: chunker.Config{Strategy: "semantic", Size: 10, Overlap: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := chunker.New(tt.cfg); err == nil {
				t.Errorf("New(%+v) expected error", tt.cfg)
			}
		})
	}
}

func TestNewDefaultsToWindow(t *testing.T) {
	splitter, err := chunker.New(chunker.Config{Size: 10, Overlap: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	spans, err := splitter.Split("abcdefghijkl")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(spans) != 2 {
		t.Errorf("Split() = %d spans, want 2", len(spans))
	}
}
