package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codalotl/annotext/internal/config"
	"github.com/codalotl/annotext/internal/span"
	"github.com/codalotl/annotext/internal/theme"
	"github.com/codalotl/annotext/internal/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's config files and environment out of a test, and runs it in an empty working directory.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, v := range config.Env {
		t.Setenv(v, "")
	}
	chdir(t, t.TempDir())
}

type result struct {
	code   int
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code, err := Run(append([]string{"annotext"}, args...), &RunOptions{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	return result{code: code, stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeFile(t *testing.T, name, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
}

func TestRun_Help(t *testing.T) {
	isolate(t)
	r := run(t, "", "-h")
	require.Equal(t, 0, r.code)
	require.NoError(t, r.err)
	assert.Empty(t, r.stderr)
	for _, name := range []string{"find", "tokenize", "languages", "diff", "patch", "codeblocks", "config", "version"} {
		assert.Contains(t, r.stdout, "  "+name+" ")
	}
}

func TestRun_UnknownCommandIsUsageError(t *testing.T) {
	isolate(t)
	r := run(t, "", "frobnicate")
	assert.Equal(t, 2, r.code)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), `unknown command "frobnicate"`)
}

func TestRun_Version(t *testing.T) {
	isolate(t)
	r := run(t, "", "version")
	require.Equal(t, 0, r.code)
	assert.Equal(t, Version+"\n", r.stdout)
}

func TestFind(t *testing.T) {
	isolate(t)
	writeFile(t, "notes.txt", "alpha beta\ngamma\nbeta\talpha\n")

	r := run(t, "", "find", "-q", "alpha", "notes.txt")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "1:1: alpha beta\n3:9: beta    alpha\n", r.stdout)

	r = run(t, "", "find", "notes.txt", "-q", "delta")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Empty(t, r.stderr)

	r = run(t, "", "find", "notes.txt")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "at least one -q/--query is required")
}

func TestFind_JSONDropsOverlaps(t *testing.T) {
	isolate(t)
	r := run(t, "x\nabcd", "find", "-q", "abc", "-q", "bcd", "--json", "-")
	require.Equal(t, 0, r.code, r.stderr)
	exp := `[
  {
    "start": 2,
    "end": 5,
    "text": "abc",
    "line": 2,
    "column": 1
  }
]
`
	assert.Equal(t, exp, r.stdout)

	r = run(t, "abc", "find", "-q", "zzz", "--json", "-")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "[]\n", r.stdout)
}

func TestFind_CaseSensitivity(t *testing.T) {
	isolate(t)
	r := run(t, "Go go", "find", "-q", "go", "-")
	assert.Equal(t, "1:1: Go go\n", r.stdout)

	r = run(t, "Go go", "find", "-s", "-q", "go", "-")
	assert.Equal(t, "1:4: Go go\n", r.stdout)

	t.Setenv("ANNOTEXT_CASE_SENSITIVE", "true")
	r = run(t, "Go go", "find", "-q", "go", "-")
	assert.Equal(t, "1:4: Go go\n", r.stdout)

	r = run(t, "Go go", "find", "--case-sensitive=false", "-q", "go", "-")
	assert.Equal(t, "1:1: Go go\n", r.stdout)
}

func TestFind_Replace(t *testing.T) {
	isolate(t)
	r := run(t, "a-b-a\n", "find", "-q", "a", "--replace", "X", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "X-b-X\n", r.stdout)

	r = run(t, "a-b-a", "find", "-q", "a", "--replace=", "-")
	assert.Equal(t, "-b-", r.stdout)
}

func TestFind_Width(t *testing.T) {
	isolate(t)
	r := run(t, "0123456789 needle and more", "find", "-q", "needle", "-w", "8", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "1:12: 0123456…\n", r.stdout)

	r = run(t, "needle", "find", "-q", "needle", "--width", "-3", "-")
	assert.Equal(t, 2, r.code)
}

func TestFind_Color(t *testing.T) {
	isolate(t)
	t.Setenv("ANNOTEXT_COLOR", "always")

	r := run(t, "say hi", "find", "-q", "hi", "-")
	require.Equal(t, 0, r.code, r.stderr)
	painted := theme.Paint(span.Highlight("say hi", []string{"hi"}, false), theme.Default)
	assert.Equal(t, "1:5: "+painted+"\n", r.stdout)
	assert.Contains(t, r.stdout, theme.Default.Style(span.Match).SGR()+"hi")

	r = run(t, "say hi", "find", "-q", "hi", "--theme", "mono", "-")
	assert.Equal(t, "1:5: "+theme.Paint(span.Highlight("say hi", []string{"hi"}, false), theme.Mono)+"\n", r.stdout)

	r = run(t, "say hi", "find", "-q", "hi", "--no-color", "-")
	assert.Equal(t, "1:5: say hi\n", r.stdout)

	r = run(t, "say hi", "find", "-q", "hi", "--theme", "neon", "-")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `unknown theme "neon"`)
}

func TestFind_MissingFile(t *testing.T) {
	isolate(t)
	r := run(t, "", "find", "-q", "x", "nope.txt")
	assert.Equal(t, 1, r.code)
	assert.True(t, strings.HasPrefix(r.stderr, "error: read nope.txt: "), r.stderr)
}

func TestRun_InvalidConfigFailsCommands(t *testing.T) {
	isolate(t)
	t.Setenv("ANNOTEXT_TAB_WIDTH", "0")
	r := run(t, "x", "find", "-q", "x", "-")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "tabwidth must be between 1 and 16")
}

func TestTokenize_Kinds(t *testing.T) {
	isolate(t)
	r := run(t, "package main\n", "tokenize", "-l", "go", "--kinds", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "keyword\t\"package\"\ndefault\t\" \"\ndefault\t\"main\"\n", r.stdout)

	writeFile(t, "x.go", "var x = 1\n")
	r = run(t, "", "tokenize", "x.go", "-k")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, "keyword\t\"var\"\n"), r.stdout)
	assert.Contains(t, r.stdout, "number\t\"1\"\n")

	writeFile(t, "script", "#!/usr/bin/env python3\nTrue\n")
	r = run(t, "", "cat", "script", "-k")
	assert.Contains(t, r.stdout, "boolean\t\"True\"\n")
}

func TestTokenize_Color(t *testing.T) {
	isolate(t)
	t.Setenv("ANNOTEXT_COLOR", "always")

	r := run(t, "var x\n\nreturn", "tokenize", "-l", "go", "-")
	require.Equal(t, 0, r.code, r.stderr)
	paint := func(line string) string {
		return theme.PaintTabs(span.FromTokens(tokenize.TokenizeLine(line, "go")), theme.Default, 4)
	}
	assert.Equal(t, paint("var x")+"\n\n"+paint("return")+"\n", r.stdout)
}

func TestTokenize_SpaceOnlyLineKeepsItsSpace(t *testing.T) {
	isolate(t)
	r := run(t, "a\n \n\nb\n", "tokenize", "-l", "go", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a\n \n\nb\n", r.stdout)

	writeFile(t, "doc.md", "```go\nvar x\n \n\ny\n```\n")
	r = run(t, "", "codeblocks", "doc.md")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "doc.md:2: go\n    var x\n     \n    \n    y\n", r.stdout)
}

func TestLanguages(t *testing.T) {
	isolate(t)
	r := run(t, "", "languages")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "go\tgolang\n")
	assert.Contains(t, r.stdout, "python\tpy, python3\n")
	assert.Equal(t, len(tokenize.DefaultRegistry.Languages()), strings.Count(r.stdout, "\n"))
}

func TestDiff(t *testing.T) {
	isolate(t)
	writeFile(t, "old.txt", "a\nb\nc\n")
	writeFile(t, "new.txt", "a\nx\nc\n")

	r := run(t, "", "diff", "old.txt", "new.txt")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "--- old.txt\n+++ new.txt\n@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n", r.stdout)

	r = run(t, "", "diff", "-U", "0", "old.txt", "new.txt")
	assert.Equal(t, "--- old.txt\n+++ new.txt\n@@ -2,1 +2,1 @@\n-b\n+x\n", r.stdout)

	r = run(t, "", "diff", "--plain", "--stat", "old.txt", "new.txt")
	assert.Equal(t, " a\n-b\n+x\n c\n1 addition(+), 1 deletion(-), 2 unchanged; words +1 -1; chars +0\n", r.stdout)

	r = run(t, "", "diff", "--html", "inline", "old.txt", "new.txt")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, `<div class="diff-inline">`), r.stdout)

	r = run(t, "", "diff", "old.txt", "old.txt")
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stdout)
}

func TestDiff_UsageErrors(t *testing.T) {
	isolate(t)
	writeFile(t, "a", "x")
	for _, args := range [][]string{
		{"diff", "a"},
		{"diff", "--html", "table", "a", "a"},
		{"diff", "-U", "-1", "a", "a"},
	} {
		r := run(t, "", args...)
		assert.Equal(t, 2, r.code, "%v: %s", args, r.stderr)
	}
}

func TestDiff_Algorithms(t *testing.T) {
	isolate(t)
	writeFile(t, "old", "a\nb")
	writeFile(t, "new", "b\na")

	// The greedy walk skips "a" on both sides without reporting it.
	r := run(t, "", "diff", "--plain", "--stat", "old", "new")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "-b\n0 additions(+), 1 deletion(-), 0 unchanged; words +0 -1; chars -1\n", r.stdout)

	want := "1 addition(+), 1 deletion(-), 1 unchanged; words +1 -1; chars +0\n"
	r = run(t, "", "diff", "--lcs", "--plain", "--stat", "old", "new")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasSuffix(r.stdout, want), r.stdout)

	t.Setenv("ANNOTEXT_DIFF_ALGORITHM", "lcs")
	r = run(t, "", "diff", "--plain", "--stat", "old", "new")
	assert.True(t, strings.HasSuffix(r.stdout, want), r.stdout)
}

func TestDiff_ColorSanitizesContent(t *testing.T) {
	isolate(t)
	t.Setenv("ANNOTEXT_COLOR", "always")
	writeFile(t, "old.txt", "a\n\x1b]0;pwned\x07\n")
	writeFile(t, "new.txt", "a\n")

	r := run(t, "", "diff", "old.txt", "new.txt")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "\x1b]0;")
	assert.Contains(t, r.stdout, `\x1B]0;pwned\x07`)

	r = run(t, "@@ -1 +1 @@ \x1b[2J\n-\x1b]0;pwned\x07\n+ok\n", "patch", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "\x1b]0;")
	assert.NotContains(t, r.stdout, "\x1b[2J")
	assert.Contains(t, r.stdout, `\x1B]0;pwned\x07`)

	t.Setenv("ANNOTEXT_COLOR", "never")
	r = run(t, "", "diff", "old.txt", "new.txt")
	assert.Contains(t, r.stdout, "-\x1b]0;pwned\x07\n")
}

func TestPatch(t *testing.T) {
	isolate(t)
	patch := "diff --git a/f b/f\n--- a/f\n+++ b/f\n@@ -1,2 +1,2 @@ func f()\n a\n-b\n+c\n"

	r := run(t, patch, "patch", "--stat", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "@@ -1,2 +1,2 @@ func f()\n a\n-b\n+c\nhunks: 1; 1 addition(+), 1 deletion(-), 1 unchanged; words +1 -1; chars +0\n", r.stdout)

	r = run(t, "just text\n", "patch", "-")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "error: no hunks found in -\n", r.stderr)
}

func TestCodeBlocks(t *testing.T) {
	isolate(t)
	writeFile(t, "doc.md", "# T\n\n```go\nvar x\n```\n\ntext\n\n```\nplain\n```\n")

	r := run(t, "", "codeblocks", "doc.md")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "doc.md:4: go\n    var x\n\ndoc.md:10: text\n    plain\n", r.stdout)

	r = run(t, "", "codeblocks", "--lang", "GO", "doc.md")
	assert.Equal(t, "doc.md:4: go\n    var x\n", r.stdout)
}

func TestConfig(t *testing.T) {
	isolate(t)
	writeFile(t, filepath.Join(".annotext", "config.json"), `{"context": 5}`)
	t.Setenv("ANNOTEXT_THEME", "mono")

	r := run(t, "", "config", "--sources")
	require.Equal(t, 0, r.code, r.stderr)

	wd, err := os.Getwd()
	require.NoError(t, err)
	projectFile := filepath.Join(wd, ".annotext", "config.json")
	exp := `{
  "theme": "mono",
  "context": 5,
  "casesensitive": false,
  "color": "auto",
  "tabwidth": 4,
  "diffalgorithm": "greedy"
}

casesensitive: default
color: default
context: json_file ` + projectFile + `
diffalgorithm: default
tabwidth: default
theme: env ANNOTEXT_THEME
`
	assert.Equal(t, exp, r.stdout)
}

// chdir changes the working directory for the duration of the test (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
