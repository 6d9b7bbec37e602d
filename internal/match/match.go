// Package match finds literal occurrences of one or more queries in a body of text.
//
// Find returns half-open byte intervals that are sorted by Start and never overlap. When candidates from different queries (or different occurrences of one query) overlap,
// the earliest-starting candidate is kept whole and every later candidate that overlaps it is dropped whole. Dropped candidates are never truncated or merged.
//
// Ties on Start are broken by discovery order: queries are considered longest first, so at a given offset a longer query beats a shorter one. For example, with queries
// "aa" and "aaa" in "aaaa", only [0,3) is kept and the trailing "a" stays unmatched.
package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Interval is a located occurrence of a query. Start and End are byte offsets into the searched text, with End exclusive. Text is text[Start:End].
type Interval struct {
	Start int
	End   int
	Text  string
}

// Len returns End - Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// FindString is Find with a single query.
func FindString(text, query string, caseSensitive bool) []Interval {
	return Find(text, []string{query}, caseSensitive)
}

// Find returns all non-overlapping occurrences of queries in text, sorted by Start. Queries are matched literally; characters like '.' or '(' only match themselves.
// Matching is case-insensitive unless caseSensitive.
//
// Empty queries are ignored. If no non-empty query remains, or nothing matches, Find returns nil.
func Find(text string, queries []string, caseSensitive bool) []Interval {
	qs := normalizeQueries(queries)
	if len(qs) == 0 || text == "" {
		return nil
	}

	var candidates []Interval
	for _, q := range qs {
		candidates = appendOccurrences(candidates, text, q, caseSensitive)
	}
	if len(candidates) == 0 {
		return nil
	}

	// Stable so that equal starts keep discovery order (longer queries first).
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})

	return dropOverlaps(candidates)
}

// normalizeQueries removes empty and duplicate queries and orders the rest longest first. Equal-length queries keep their input order.
func normalizeQueries(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	var out []string
	for _, q := range queries {
		if q == "" {
			continue
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// appendOccurrences appends the left-to-right, non-overlapping occurrences of query in text to dst.
func appendOccurrences(dst []Interval, text, query string, caseSensitive bool) []Interval {
	if caseSensitive {
		off := 0
		for off <= len(text) {
			idx := strings.Index(text[off:], query)
			if idx < 0 {
				break
			}
			start := off + idx
			end := start + len(query)
			dst = append(dst, Interval{Start: start, End: end, Text: text[start:end]})
			off = end
		}
		return dst
	}

	// Case-folded matching can change byte lengths (ex: 'K' vs the Kelvin sign), so search the original text with a folded pattern rather than lowercasing
	// the text and reusing its offsets. regexp rejects patterns that are not valid UTF-8; those are scanned by hand.
	if !utf8.ValidString(query) {
		return appendFoldedOccurrences(dst, text, query)
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return appendFoldedOccurrences(dst, text, query)
	}
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[1] <= loc[0] {
			continue
		}
		dst = append(dst, Interval{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]})
	}
	return dst
}

// appendFoldedOccurrences is the byte-scanning form of the case-insensitive search. Valid runes compare under Unicode case folding; bytes that are not part
// of a valid rune must match exactly.
func appendFoldedOccurrences(dst []Interval, text, query string) []Interval {
	off := 0
	for off < len(text) {
		n, ok := foldedPrefix(text[off:], query)
		if !ok || n == 0 {
			off++
			continue
		}
		dst = append(dst, Interval{Start: off, End: off + n, Text: text[off : off+n]})
		off += n
	}
	return dst
}

// foldedPrefix reports whether text starts with query under case folding, and if so how many bytes of text the match spans.
func foldedPrefix(text, query string) (int, bool) {
	i, j := 0, 0
	for j < len(query) {
		if i >= len(text) {
			return 0, false
		}
		qr, qn := utf8.DecodeRuneInString(query[j:])
		tr, tn := utf8.DecodeRuneInString(text[i:])
		qBad := qr == utf8.RuneError && qn == 1
		tBad := tr == utf8.RuneError && tn == 1
		switch {
		case qBad || tBad:
			if !qBad || !tBad || query[j] != text[i] {
				return 0, false
			}
		case qr != tr && !strings.EqualFold(string(qr), string(tr)):
			return 0, false
		}
		i += tn
		j += qn
	}
	return i, true
}

// dropOverlaps keeps an interval iff it starts at or after the end of the previously kept one. sorted must be sorted by Start.
func dropOverlaps(sorted []Interval) []Interval {
	kept := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if len(kept) > 0 && iv.Start < kept[len(kept)-1].End {
			continue
		}
		kept = append(kept, iv)
	}
	return kept
}
