package span

import "fmt"

// Validate checks that spans are a contiguous, non-overlapping cover of text and returns an error on the first violation.
func Validate(text string, spans []Span) error {
	if text == "" {
		if len(spans) != 0 {
			return fmt.Errorf("empty text requires zero spans, got %d", len(spans))
		}
		return nil
	}
	pos := 0
	for i, s := range spans {
		if s.Start != pos {
			return fmt.Errorf("span[%d]: Start=%d, want %d", i, s.Start, pos)
		}
		if s.End <= s.Start {
			return fmt.Errorf("span[%d]: empty or inverted range [%d,%d)", i, s.Start, s.End)
		}
		if s.End > len(text) {
			return fmt.Errorf("span[%d]: End=%d exceeds text length %d", i, s.End, len(text))
		}
		if text[s.Start:s.End] != s.Text {
			return fmt.Errorf("span[%d]: Text %q does not match source %q", i, s.Text, text[s.Start:s.End])
		}
		pos = s.End
	}
	if pos != len(text) {
		return fmt.Errorf("spans cover %d of %d bytes", pos, len(text))
	}
	return nil
}
