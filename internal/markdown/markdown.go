// Package markdown extracts fenced code blocks from markdown so they can be tokenized and painted like source files.
package markdown

import (
	"bytes"
	"strings"

	"github.com/codalotl/annotext/internal/tokenize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced code block.
type CodeBlock struct {
	Info      string // full info string after the opening fence, e.g. "go {api}"
	Language  string // first word of Info, lowercased; "" if none
	Code      string // block content without the final newline
	StartLine int    // 1-based line in the source where the content starts; 0 for an empty block
}

// Tokens tokenizes the block's content with the default registry. Unknown languages fall back to generic tokenization.
func (b CodeBlock) Tokens() [][]tokenize.Token {
	return tokenize.TokenizeText(b.Code, b.Language)
}

// CodeBlocks returns the fenced code blocks of src in document order, including blocks nested in lists and quotes. A fence left open runs to the end of the document,
// as CommonMark specifies.
func CodeBlocks(src []byte) []CodeBlock {
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	if root == nil {
		return nil
	}

	var blocks []CodeBlock
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		info := ""
		if fcb.Info != nil {
			info = strings.TrimSpace(string(fcb.Info.Value(src)))
		}
		code, start := fencedCodeContent(src, fcb)
		startLine := 0
		if start >= 0 {
			startLine = 1 + bytes.Count(src[:start], []byte("\n"))
		}
		blocks = append(blocks, CodeBlock{
			Info:      info,
			Language:  infoLanguage(info),
			Code:      strings.TrimSuffix(code, "\n"),
			StartLine: startLine,
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// infoLanguage returns the first word of a fence info string, stopping at whitespace or an attribute brace.
func infoLanguage(info string) string {
	end := strings.IndexAny(info, " \t{")
	if end >= 0 {
		info = info[:end]
	}
	return strings.ToLower(info)
}

func fencedCodeContent(src []byte, fcb *ast.FencedCodeBlock) (code string, start int) {
	lines := fcb.Lines()
	if lines == nil || lines.Len() == 0 {
		return "", -1
	}
	start = -1
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if seg.Start < 0 || seg.Stop < seg.Start || seg.Stop > len(src) {
			continue
		}
		if start == -1 {
			start = seg.Start
		}
		buf.Write(seg.Value(src))
	}
	return buf.String(), start
}
