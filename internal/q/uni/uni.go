// Package uni measures text as a monospace terminal displays it: grapheme clusters, East Asian widths, and tab stops.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation.
//
// Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// TextWidth returns the text width of str for monospace fonts in terminals. Tabs count as 0; use Column or ExpandTabs for tab stops. If opts is nil, locale is
// assumed to be non-East Asian.
func TextWidth(str string, opts *Options) int {
	return conditionFromOptions(opts).StringWidth(str)
}

// Column returns the 0-based display column at byte offset in line, expanding tabs to multiples of tabWidth (a tabWidth <= 0 makes tabs 1 wide). An offset inside
// a grapheme cluster reports the cluster's column. Offsets past the end report the width of the whole line.
func Column(line string, offset int, tabWidth int, opts *Options) int {
	cond := conditionFromOptions(opts)
	col := 0
	iter := graphemes.FromString(line)
	for iter.Next() {
		if iter.End() > offset {
			break
		}
		col = advance(col, iter.Value(), tabWidth, cond)
	}
	return col
}

// ExpandTabs replaces each tab in s with spaces up to the next multiple of tabWidth, assuming s starts at display column startCol. A newline resets the column to
// 0. It returns the expanded text and the column after it. If tabWidth <= 0, s is returned unchanged.
func ExpandTabs(s string, startCol int, tabWidth int, opts *Options) (string, int) {
	cond := conditionFromOptions(opts)
	if tabWidth <= 0 || !strings.Contains(s, "\t") {
		return s, endColumn(s, startCol, tabWidth, cond)
	}

	var b strings.Builder
	col := startCol
	iter := graphemes.FromString(s)
	for iter.Next() {
		g := iter.Value()
		next := advance(col, g, tabWidth, cond)
		if g == "\t" {
			b.WriteString(strings.Repeat(" ", next-col))
		} else {
			b.WriteString(g)
		}
		col = next
	}
	return b.String(), col
}

// Truncate shortens s so its display width is at most width, ending it with ellipsis when anything was removed. Grapheme clusters are never split. If ellipsis
// alone is wider than width, the result is the empty string.
func Truncate(s string, width int, ellipsis string, opts *Options) string {
	cond := conditionFromOptions(opts)
	if cond.StringWidth(s) <= width {
		return s
	}
	avail := width - cond.StringWidth(ellipsis)
	if avail < 0 {
		return ""
	}

	used := 0
	end := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if used+w > avail {
			break
		}
		used += w
		end = iter.End()
	}
	return s[:end] + ellipsis
}

// advance returns the column after grapheme g is drawn at col.
func advance(col int, g string, tabWidth int, cond *runewidth.Condition) int {
	switch g {
	case "\t":
		if tabWidth <= 0 {
			return col + 1
		}
		return (col/tabWidth + 1) * tabWidth
	case "\n", "\r\n":
		return 0
	}
	return col + cond.StringWidth(g)
}

func endColumn(s string, col int, tabWidth int, cond *runewidth.Condition) int {
	iter := graphemes.FromString(s)
	for iter.Next() {
		col = advance(col, iter.Value(), tabWidth, cond)
	}
	return col
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
