// Package theme maps span classes to terminal styles and paints span lists as ANSI text.
package theme

import (
	"sort"
	"strconv"
	"strings"

	"github.com/codalotl/annotext/internal/q/uni"
	"github.com/codalotl/annotext/internal/span"
	"github.com/codalotl/annotext/internal/tokenize"
)

// Style is a terminal text style. FG and BG are 256-color palette indexes; -1 leaves the terminal's color unchanged.
type Style struct {
	FG        int
	BG        int
	Bold      bool
	Underline bool
}

// Unstyled leaves text as-is.
var Unstyled = Style{FG: -1, BG: -1}

// IsUnstyled reports whether s changes nothing.
func (s Style) IsUnstyled() bool {
	return s.FG < 0 && s.BG < 0 && !s.Bold && !s.Underline
}

// SGR returns the escape sequence that turns s on, or "" if s is unstyled.
func (s Style) SGR() string {
	var parts []string
	if s.Bold {
		parts = append(parts, "1")
	}
	if s.Underline {
		parts = append(parts, "4")
	}
	if s.FG >= 0 {
		parts = append(parts, "38;5;"+strconv.Itoa(s.FG))
	}
	if s.BG >= 0 {
		parts = append(parts, "48;5;"+strconv.Itoa(s.BG))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

const reset = "\x1b[0m"

// Theme assigns a Style to span classes. Classes without an entry are unstyled.
type Theme struct {
	Name   string
	Styles map[span.Class]Style
}

// Style returns the style for c.
func (t Theme) Style(c span.Class) Style {
	if s, ok := t.Styles[c]; ok {
		return s
	}
	return Unstyled
}

func fg(n int) Style { return Style{FG: n, BG: -1} }

var (
	// Default is a 256-color theme for dark terminals.
	Default = Theme{
		Name: "default",
		Styles: map[span.Class]Style{
			span.Match:                            {FG: 16, BG: 220, Bold: true},
			span.TokenClass(tokenize.Keyword):     {FG: 170, BG: -1, Bold: true},
			span.TokenClass(tokenize.String):      fg(114),
			span.TokenClass(tokenize.Number):      fg(173),
			span.TokenClass(tokenize.Comment):     fg(244),
			span.TokenClass(tokenize.Function):    fg(75),
			span.TokenClass(tokenize.Operator):    fg(180),
			span.TokenClass(tokenize.Punctuation): fg(250),
			span.TokenClass(tokenize.Boolean):     fg(209),
			span.TokenClass(tokenize.Builtin):     fg(38),
		},
	}

	// Mono uses only bold and underline.
	Mono = Theme{
		Name: "mono",
		Styles: map[span.Class]Style{
			span.Match:                         {FG: -1, BG: -1, Bold: true, Underline: true},
			span.TokenClass(tokenize.Keyword):  {FG: -1, BG: -1, Bold: true},
			span.TokenClass(tokenize.Function): {FG: -1, BG: -1, Underline: true},
		},
	}

	// None paints nothing.
	None = Theme{Name: "none"}
)

var byName = map[string]Theme{
	Default.Name: Default,
	Mono.Name:    Mono,
	None.Name:    None,
}

// ByName returns the built-in theme called name (case-insensitive).
func ByName(name string) (Theme, bool) {
	th, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return th, ok
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Paint concatenates spans, wrapping each styled span in its SGR sequence and a reset. Newlines inside a span are written outside the escape sequences so styles
// never bleed across lines.
func Paint(spans []span.Span, th Theme) string {
	return PaintTabs(spans, th, 0)
}

// PaintTabs is Paint with tabs expanded to multiples of tabWidth (see uni.ExpandTabs). Columns are tracked across spans and reset at each newline. A tabWidth <=
// 0 leaves tabs alone. Span text is passed through Sanitize first, so control characters in the source cannot reach the terminal.
func PaintTabs(spans []span.Span, th Theme, tabWidth int) string {
	var b strings.Builder
	col := 0
	for _, sp := range spans {
		text := Sanitize(sp.Text)
		if tabWidth > 0 {
			text, col = uni.ExpandTabs(text, col, tabWidth, nil)
		}
		writeStyled(&b, text, th.Style(sp.Class))
	}
	return b.String()
}

func writeStyled(b *strings.Builder, text string, s Style) {
	sgr := s.SGR()
	if sgr == "" {
		b.WriteString(text)
		return
	}
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if seg == "" {
			continue
		}
		b.WriteString(sgr)
		b.WriteString(seg)
		b.WriteString(reset)
	}
}
