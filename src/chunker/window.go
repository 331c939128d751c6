package chunker

// windowSplitter cuts the text into fixed-size rune windows where each
// window overlaps its predecessor by exactly the configured overlap.
// The final window may be shorter than the configured size.
type windowSplitter struct {
	size    int
	overlap int
}

func (s *windowSplitter) Split(text string) ([]Span, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	step := s.size - s.overlap
	var spans []Span
	for start := 0; ; start += step {
		end := start + s.size
		if end > len(runes) {
			end = len(runes)
		}
		spans = append(spans, Span{
			Text:  string(runes[start:end]),
			Start: start,
			End:   end,
		})
		if end == len(runes) {
			break
		}
	}

	return spans, nil
}
