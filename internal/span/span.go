// Package span turns match intervals and tokens into gap-filled, classified slices of text that a renderer can paint directly.
//
// Invariant: for a given source text, the spans produced for it are contiguous and non-overlapping. Concatenating their Text fields reproduces the source exactly,
// spans[0].Start == 0, and spans[i].End == spans[i+1].Start. Renderers rely on this and never need to re-derive offsets. Validate checks it.
//
// Empty text produces zero spans.
package span

import (
	"github.com/codalotl/annotext/internal/match"
	"github.com/codalotl/annotext/internal/tokenize"
)

// Class is the classification of a Span: Plain, Match, or a token kind (see TokenClass).
type Class uint8

const (
	Plain Class = iota // Unannotated text.
	Match              // A search match.

	tokenBase // TokenClass(k) == tokenBase + k.
)

// TokenClass returns the Class for a token kind.
func TokenClass(k tokenize.Kind) Class {
	return tokenBase + Class(k)
}

// TokenKind returns the token kind of c, if c is a token class.
func (c Class) TokenKind() (tokenize.Kind, bool) {
	if c < tokenBase {
		return tokenize.Default, false
	}
	return tokenize.Kind(c - tokenBase), true
}

// String returns "plain", "match", or the token kind's name.
func (c Class) String() string {
	switch c {
	case Plain:
		return "plain"
	case Match:
		return "match"
	}
	k, _ := c.TokenKind()
	return k.String()
}

// Span is a classified, contiguous slice of a source text. Start and End are byte offsets into the source, End exclusive.
type Span struct {
	Text  string
	Class Class
	Start int
	End   int
}

// FromMatches walks text once and emits a Plain span for every gap before, between, and after matches and a Match span for every match, left to right. With no
// matches it returns a single Plain span covering text; empty text returns nil.
//
// Precondition (not checked): matches are sorted by Start, do not overlap, and lie within text. match.Find guarantees this.
func FromMatches(text string, matches []match.Interval) []Span {
	if text == "" {
		return nil
	}
	spans := make([]Span, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			spans = append(spans, Span{Text: text[pos:m.Start], Class: Plain, Start: pos, End: m.Start})
		}
		spans = append(spans, Span{Text: text[m.Start:m.End], Class: Match, Start: m.Start, End: m.End})
		pos = m.End
	}
	if pos < len(text) {
		spans = append(spans, Span{Text: text[pos:], Class: Plain, Start: pos, End: len(text)})
	}
	return spans
}

// Highlight finds queries in text (see match.Find) and assembles the result with FromMatches.
func Highlight(text string, queries []string, caseSensitive bool) []Span {
	return FromMatches(text, match.Find(text, queries, caseSensitive))
}

// FromTokens converts one line's tokens into spans, deriving each span's offsets from the lengths of the tokens before it. The spans cover the concatenated token
// text, which is the tokenized line except for the empty-line case (a single " " token).
func FromTokens(tokens []tokenize.Token) []Span {
	if len(tokens) == 0 {
		return nil
	}
	spans := make([]Span, len(tokens))
	pos := 0
	for i, tok := range tokens {
		end := pos + len(tok.Text)
		spans[i] = Span{Text: tok.Text, Class: TokenClass(tok.Kind), Start: pos, End: end}
		pos = end
	}
	return spans
}

// Text concatenates the Text of spans.
func Text(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
