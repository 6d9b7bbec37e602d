package diff

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// HTMLFormat selects the layout of RenderHTML.
type HTMLFormat int

const (
	HTMLInline     HTMLFormat = iota // one column; each line carries a marker and its line numbers
	HTMLSideBySide                   // old on the left, new on the right; padded with empty rows
)

// ParseHTMLFormat parses "inline" or "side" (also "side-by-side").
func ParseHTMLFormat(s string) (HTMLFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return HTMLInline, true
	case "side", "side-by-side", "sidebyside":
		return HTMLSideBySide, true
	}
	return HTMLInline, false
}

// RenderHTML renders lines as HTML divs. Content is HTML-escaped. CSS classes:
//   - container: "diff-inline", or "diff-side-by-side" with "diff-left" and "diff-right" columns
//   - each row: "diff-line" plus one of "diff-equal", "diff-delete", "diff-insert", "diff-empty"
//   - row parts: "line-num", "line-prefix" (inline only), "line-content"
func RenderHTML(lines []Line, format HTMLFormat) string {
	if format == HTMLSideBySide {
		return renderSideBySide(lines)
	}
	return renderInline(lines)
}

func htmlClass(k Kind) string {
	switch k {
	case Removed:
		return "diff-delete"
	case Added:
		return "diff-insert"
	default:
		return "diff-equal"
	}
}

func renderInline(lines []Line) string {
	var b strings.Builder
	b.WriteString(`<div class="diff-inline">`)
	for _, ln := range lines {
		var nums string
		switch {
		case ln.OldNumber > 0 && ln.NewNumber > 0:
			nums = fmt.Sprintf("%d/%d", ln.OldNumber, ln.NewNumber)
		case ln.OldNumber > 0:
			nums = strconv.Itoa(ln.OldNumber)
		case ln.NewNumber > 0:
			nums = strconv.Itoa(ln.NewNumber)
		}
		fmt.Fprintf(&b, `<div class="diff-line %s"><span class="line-num">%s</span><span class="line-prefix">%s</span><span class="line-content">%s</span></div>`,
			htmlClass(ln.Kind), nums, ln.Kind.Prefix(), html.EscapeString(ln.Content))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderSideBySide(lines []Line) string {
	const empty = `<div class="diff-line diff-empty"></div>`
	row := func(b *strings.Builder, k Kind, num int, content string) {
		fmt.Fprintf(b, `<div class="diff-line %s"><span class="line-num">%d</span><span class="line-content">%s</span></div>`, htmlClass(k), num, html.EscapeString(content))
	}

	var left, right strings.Builder
	for _, ln := range lines {
		switch ln.Kind {
		case Unchanged:
			row(&left, ln.Kind, ln.OldNumber, ln.Content)
			row(&right, ln.Kind, ln.NewNumber, ln.Content)
		case Removed:
			row(&left, ln.Kind, ln.OldNumber, ln.Content)
			right.WriteString(empty)
		case Added:
			left.WriteString(empty)
			row(&right, ln.Kind, ln.NewNumber, ln.Content)
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="diff-side-by-side"><div class="diff-left">`)
	b.WriteString(left.String())
	b.WriteString(`</div><div class="diff-right">`)
	b.WriteString(right.String())
	b.WriteString(`</div></div>`)
	return b.String()
}
