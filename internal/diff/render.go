package diff

import (
	"fmt"
	"strings"
)

// RenderPlain returns every line prefixed with its marker (" ", "-", or "+"), joined with "\n". No headers or line numbers are emitted, and unchanged lines are
// never elided.
func RenderPlain(lines []Line) string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Kind.Prefix() + ln.Content
	}
	return strings.Join(out, "\n")
}

// ANSI colors used when rendering with color.
const (
	reset    = "\x1b[0m"
	red      = "\x1b[31m"
	green    = "\x1b[32m"
	magenta  = "\x1b[35m"
	cyanBold = "\x1b[1;36m"
)

type painter bool

func (p painter) paint(s, code string) string {
	if !p {
		return s
	}
	return code + s + reset
}

// line renders ln with its marker, red for Removed and green for Added.
func (p painter) line(ln Line) string {
	s := ln.Kind.Prefix() + ln.Content
	switch ln.Kind {
	case Added:
		return p.paint(s, green)
	case Removed:
		return p.paint(s, red)
	}
	return s
}

// RenderUnified returns a unified diff of lines. If color, the diff will include ANSI color markers.
//
// If fromFilename or toFilename is non-empty, "--- <from>" and "+++ <to>" headers are emitted first. contextSize controls how many unchanged lines are shown before
// and after each group of changes. Two changes separated by at most 2*contextSize unchanged lines are merged into a single hunk. Hunk headers follow the
// "@@ -start,count +start,count @@" form, with start taken from the lines' numbers. If there are no changes, only the headers (if any) are returned.
func RenderUnified(lines []Line, fromFilename string, toFilename string, contextSize int, color bool) string {
	p := painter(color)
	if contextSize < 0 {
		contextSize = 0
	}

	var out []string
	if fromFilename != "" || toFilename != "" {
		out = append(out, p.paint("--- "+fromFilename, cyanBold), p.paint("+++ "+toFilename, cyanBold))
	}
	for _, g := range groupChanges(lines, contextSize) {
		oldStart, oldCount, newStart, newCount := hunkRange(lines, g.start, g.end)
		out = append(out, p.paint(fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount), magenta))
		for _, ln := range lines[g.start:g.end] {
			out = append(out, p.line(ln))
		}
	}
	return strings.Join(out, "\n")
}

// RenderHunks renders parsed hunks back to unified diff text, using each hunk's own header. See ParsePatch.
func RenderHunks(hunks []Hunk, color bool) string {
	p := painter(color)
	var out []string
	for _, h := range hunks {
		out = append(out, p.paint(h.Header(), magenta))
		for _, ln := range h.Lines {
			out = append(out, p.line(ln))
		}
	}
	return strings.Join(out, "\n")
}

// lineRange is a half-open range of indexes into a []Line.
type lineRange struct {
	start int
	end   int
}

// groupChanges returns one range per unified hunk: each run of changes (merging across gaps of at most 2*contextSize unchanged lines) widened by contextSize lines
// on each side.
func groupChanges(lines []Line, contextSize int) []lineRange {
	var groups []lineRange
	for i := 0; i < len(lines); i++ {
		if lines[i].Kind == Unchanged {
			continue
		}

		// Extend while the gap since the last change is small enough to bridge.
		last := i
		for j := i + 1; j < len(lines) && j-last-1 <= 2*contextSize; j++ {
			if lines[j].Kind != Unchanged {
				last = j
			}
		}

		groups = append(groups, lineRange{
			start: max(0, i-contextSize),
			end:   min(len(lines), last+1+contextSize),
		})
		i = last
	}
	return groups
}

// hunkRange computes a unified hunk header's numbers for lines[start:end]. A side with no lines in the hunk reports the number of the line before it (0 at the top of
// the file), matching diff(1).
func hunkRange(lines []Line, start, end int) (oldStart, oldCount, newStart, newCount int) {
	for _, ln := range lines[start:end] {
		if ln.OldNumber > 0 {
			if oldCount == 0 {
				oldStart = ln.OldNumber
			}
			oldCount++
		}
		if ln.NewNumber > 0 {
			if newCount == 0 {
				newStart = ln.NewNumber
			}
			newCount++
		}
	}
	if oldCount == 0 {
		oldStart = lastNumber(lines[:start], func(ln Line) int { return ln.OldNumber })
	}
	if newCount == 0 {
		newStart = lastNumber(lines[:start], func(ln Line) int { return ln.NewNumber })
	}
	return oldStart, oldCount, newStart, newCount
}

func lastNumber(lines []Line, number func(Line) int) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if n := number(lines[i]); n > 0 {
			return n
		}
	}
	return 0
}
