package markdown

import (
	"strings"
	"testing"

	"github.com/codalotl/annotext/internal/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBlocks(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"```go",
		"package main",
		"",
		"func main() {}",
		"```",
		"",
		"Some text with `inline code`.",
		"",
		"- item",
		"",
		"  ```Python {linenos}",
		"  print(1)",
		"  ```",
		"",
		"```",
		"no info",
		"```",
		"",
		"```js",
		"```",
	}, "\n")

	blocks := CodeBlocks([]byte(src))
	require.Len(t, blocks, 4)

	assert.Equal(t, CodeBlock{Info: "go", Language: "go", Code: "package main\n\nfunc main() {}", StartLine: 4}, blocks[0])
	assert.Equal(t, CodeBlock{Info: "Python {linenos}", Language: "python", Code: "print(1)", StartLine: 14}, blocks[1])
	assert.Equal(t, CodeBlock{Info: "", Language: "", Code: "no info", StartLine: 18}, blocks[2])
	assert.Equal(t, CodeBlock{Info: "js", Language: "js", Code: "", StartLine: 0}, blocks[3])
}

func TestCodeBlocks_UnclosedFenceRunsToEnd(t *testing.T) {
	blocks := CodeBlocks([]byte("intro\n\n```sql\nselect 1\nfrom t\n"))
	require.Len(t, blocks, 1)
	assert.Equal(t, "select 1\nfrom t", blocks[0].Code)
	assert.Equal(t, "sql", blocks[0].Language)
}

func TestCodeBlocks_None(t *testing.T) {
	assert.Empty(t, CodeBlocks(nil))
	assert.Empty(t, CodeBlocks([]byte("just *text*\n\n    indented code is not fenced\n")))
}

func TestCodeBlockTokens(t *testing.T) {
	blocks := CodeBlocks([]byte("```go\npackage main\n\nvar x = 1\n```\n"))
	require.Len(t, blocks, 1)

	lines := blocks[0].Tokens()
	require.Len(t, lines, 3)
	assert.Equal(t, []tokenize.Token{
		{Kind: tokenize.Keyword, Text: "package"},
		{Kind: tokenize.Default, Text: " "},
		{Kind: tokenize.Default, Text: "main"},
	}, lines[0])
	assert.Equal(t, []tokenize.Token{{Kind: tokenize.Default, Text: " "}}, lines[1])
	assert.Equal(t, tokenize.Number, lines[2][len(lines[2])-1].Kind)
}
