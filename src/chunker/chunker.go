package chunker

import "fmt"

const (
	StrategyWindow    = "window"
	StrategyRecursive = "recursive"

	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Span is a contiguous slice of source text produced by a Splitter.
// Offsets are rune offsets into the source text.
type Span struct {
	Text  string
	Start int
	End   int // exclusive
}

// Splitter turns a document's text into an ordered sequence of spans.
type Splitter interface {
	Split(text string) ([]Span, error)
}

// Config holds the splitting parameters shared by all strategies.
type Config struct {
	Strategy string
	Size     int
	Overlap  int
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Size)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.Size {
		return fmt.Errorf("chunk overlap (%d) must be smaller than chunk size (%d)", c.Overlap, c.Size)
	}
	return nil
}

// New creates a Splitter for the configured strategy.
func New(cfg Config) (Splitter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch cfg.Strategy {
	case "", StrategyWindow:
		return &windowSplitter{size: cfg.Size, overlap: cfg.Overlap}, nil
	case StrategyRecursive:
		return &recursiveSplitter{size: cfg.Size, overlap: cfg.Overlap}, nil
	default:
		return nil, fmt.Errorf("unknown chunking strategy: %s", cfg.Strategy)
	}
}
