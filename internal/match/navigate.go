package match

import "strings"

// Next returns the index in matches of the next match at or after pos: the first match whose End is greater than pos. If pos is past all matches, it wraps and returns 0.
// Returns -1 if there are no matches.
func Next(matches []Interval, pos int) int {
	if len(matches) == 0 {
		return -1
	}
	for i, m := range matches {
		if pos < m.End {
			return i
		}
	}
	return 0
}

// Prev returns the index in matches of the last match that starts before pos. If no match starts before pos, it wraps and returns the last index. Returns -1 if there
// are no matches.
func Prev(matches []Interval, pos int) int {
	if len(matches) == 0 {
		return -1
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Start < pos {
			return i
		}
	}
	return len(matches) - 1
}

// Replace returns text with every interval in matches replaced by replacement.
//
// matches must be sorted by Start and non-overlapping (as returned by Find), and must have been computed against text. Intervals that fall outside text are ignored.
func Replace(text string, matches []Interval, replacement string) string {
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, m := range matches {
		if m.Start < pos || m.End > len(text) {
			continue
		}
		b.WriteString(text[pos:m.Start])
		b.WriteString(replacement)
		pos = m.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

// LineMatch is the set of matches that start on one line of text.
type LineMatch struct {
	Line    int        // 1-based line number.
	Text    string     // Line content without the trailing '\n'.
	Offset  int        // Byte offset of the start of the line within the full text.
	Matches []Interval // Matches with Start/End relative to the start of the line. End is clamped to len(Text) for matches that cross a newline.
}

// ByLine groups matches by the line on which they start. A match that starts on a line's newline has nothing to show on that line and is skipped.
// Lines without matches are omitted. matches must be sorted by Start.
func ByLine(text string, matches []Interval) []LineMatch {
	if len(matches) == 0 {
		return nil
	}

	var out []LineMatch
	lineNo := 1
	lineStart := 0
	mi := 0
	for lineStart <= len(text) && mi < len(matches) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		var lm *LineMatch
		for mi < len(matches) && matches[mi].Start <= lineEnd {
			m := matches[mi]
			mi++
			if m.Start < lineStart {
				continue
			}
			start, end := m.Start-lineStart, min(m.End, lineEnd)-lineStart
			if end <= start {
				continue
			}
			if lm == nil {
				out = append(out, LineMatch{Line: lineNo, Text: text[lineStart:lineEnd], Offset: lineStart})
				lm = &out[len(out)-1]
			}
			lm.Matches = append(lm.Matches, Interval{Start: start, End: end, Text: lm.Text[start:end]})
		}

		lineStart = lineEnd + 1
		lineNo++
	}
	return out
}
