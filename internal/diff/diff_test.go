package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLines_ReplacedMiddleLine(t *testing.T) {
	got := DiffLines("a\nb\nc", "a\nx\nc")
	exp := []Line{
		{Kind: Unchanged, Content: "a", OldNumber: 1, NewNumber: 1},
		{Kind: Removed, Content: "b", OldNumber: 2},
		{Kind: Added, Content: "x", NewNumber: 2},
		{Kind: Unchanged, Content: "c", OldNumber: 3, NewNumber: 3},
	}
	assert.Equal(t, exp, got)
	require.NoError(t, validate("a\nb\nc", "a\nx\nc", got, true))
}

func TestDiffLines_Cases(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		exp  []Line
	}{
		{
			name: "identical",
			old:  "x\ny",
			new:  "x\ny",
			exp: []Line{
				{Kind: Unchanged, Content: "x", OldNumber: 1, NewNumber: 1},
				{Kind: Unchanged, Content: "y", OldNumber: 2, NewNumber: 2},
			},
		},
		{
			name: "both empty",
			old:  "",
			new:  "",
			exp:  []Line{{Kind: Unchanged, Content: "", OldNumber: 1, NewNumber: 1}},
		},
		{
			name: "empty to one line",
			old:  "",
			new:  "x",
			exp: []Line{
				{Kind: Removed, Content: "", OldNumber: 1},
				{Kind: Added, Content: "x", NewNumber: 1},
			},
		},
		{
			name: "insert before trailing newline",
			old:  "a\n",
			new:  "a\nb\n",
			exp: []Line{
				{Kind: Unchanged, Content: "a", OldNumber: 1, NewNumber: 1},
				{Kind: Added, Content: "b", NewNumber: 2},
				{Kind: Unchanged, Content: "", OldNumber: 2, NewNumber: 3},
			},
		},
		{
			name: "insert at top",
			old:  "b",
			new:  "a\nb",
			exp: []Line{
				{Kind: Added, Content: "a", NewNumber: 1},
				{Kind: Unchanged, Content: "b", OldNumber: 1, NewNumber: 2},
			},
		},
		{
			name: "leftover old lines are removed",
			old:  "a\nb\nc",
			new:  "a",
			exp: []Line{
				{Kind: Unchanged, Content: "a", OldNumber: 1, NewNumber: 1},
				{Kind: Removed, Content: "b", OldNumber: 2},
				{Kind: Removed, Content: "c", OldNumber: 3},
			},
		},
		{
			name: "carriage return is content",
			old:  "a\r\nb",
			new:  "a\nb",
			exp: []Line{
				{Kind: Removed, Content: "a\r", OldNumber: 1},
				{Kind: Added, Content: "a", NewNumber: 1},
				{Kind: Unchanged, Content: "b", OldNumber: 2, NewNumber: 2},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiffLines(tc.old, tc.new)
			assert.Equal(t, tc.exp, got)
			require.NoError(t, validate(tc.old, tc.new, got, false))
		})
	}
}

// Swapped lines each occur in the other text, so the walk advances past them without emitting anything.
func TestDiffLines_AmbiguousLinesAreSkipped(t *testing.T) {
	got := DiffLines("a\nb", "b\na")
	assert.Equal(t, []Line{{Kind: Removed, Content: "b", OldNumber: 2}}, got)
	require.NoError(t, validate("a\nb", "b\na", got, false))
	require.Error(t, validate("a\nb", "b\na", got, true))

	// A trailing new line that also occurs earlier in old is skipped once old is exhausted.
	got = DiffLines("a\nb", "a\nb\na")
	assert.Equal(t, []Line{
		{Kind: Unchanged, Content: "a", OldNumber: 1, NewNumber: 1},
		{Kind: Unchanged, Content: "b", OldNumber: 2, NewNumber: 2},
	}, got)
}

func TestDiffLines_LargeInput(t *testing.T) {
	var oldB, newB strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&oldB, "line %d\n", i)
		if i%10 == 0 {
			fmt.Fprintf(&newB, "changed %d\n", i)
		} else {
			fmt.Fprintf(&newB, "line %d\n", i)
		}
	}
	got := DiffLines(oldB.String(), newB.String())
	require.NoError(t, validate(oldB.String(), newB.String(), got, true))

	s := ComputeStats(got)
	assert.Equal(t, 500, s.Added)
	assert.Equal(t, 500, s.Removed)
	assert.Equal(t, 4501, s.Unchanged) // includes the empty line after the final '\n'
}

func TestCompute_DefaultIsGreedy(t *testing.T) {
	assert.Equal(t, DiffLines("a\nb", "b\na"), Compute("a\nb", "b\na", Options{}))
}

func TestCompute_LCS(t *testing.T) {
	got := Compute("a\nb\nc", "a\nx\nc", Options{Algorithm: AlgorithmLCS})
	exp := []Line{
		{Kind: Unchanged, Content: "a", OldNumber: 1, NewNumber: 1},
		{Kind: Removed, Content: "b", OldNumber: 2},
		{Kind: Added, Content: "x", NewNumber: 2},
		{Kind: Unchanged, Content: "c", OldNumber: 3, NewNumber: 3},
	}
	assert.Equal(t, exp, got)
}

func TestCompute_LCSAccountsForEveryLine(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "x"},
		{"x", ""},
		{"a\nb", "b\na"},
		{"a\nb", "a\nb\na"},
		{"a\nb\nc\n", "c\nb\na\n"},
		{"same\nsame\nsame", "same"},
		{"x\n\n\ny", "\nx\ny\n"},
		{"func f() {\n\treturn 1\n}\n", "func f() {\n\tif ok {\n\t\treturn 1\n\t}\n\treturn 0\n}\n"},
	}
	for _, p := range pairs {
		got := Compute(p[0], p[1], Options{Algorithm: AlgorithmLCS})
		require.NoError(t, validate(p[0], p[1], got, true), "old=%q new=%q", p[0], p[1])

		oldText, newText := Reconstruct(got)
		assert.Equal(t, p[0], oldText)
		assert.Equal(t, p[1], newText)
	}
}

func TestCompute_LCSManyDistinctLines(t *testing.T) {
	// Enough distinct lines that their indices run past the UTF-16 surrogate range.
	const n = 56000
	common := make([]string, n)
	for i := range common {
		common[i] = fmt.Sprintf("line %d", i)
	}
	oldText := strings.Join(common, "\n") + "\nold tail"
	newText := strings.Join(common, "\n") + "\nnew tail\nextra"

	got := Compute(oldText, newText, Options{Algorithm: AlgorithmLCS})
	require.NoError(t, validate(oldText, newText, got, true))
	require.Len(t, got, n+3)

	assert.Equal(t, Line{Kind: Unchanged, Content: "line 55999", OldNumber: n, NewNumber: n}, got[n-1])
	assert.Equal(t, []Line{
		{Kind: Removed, Content: "old tail", OldNumber: n + 1},
		{Kind: Added, Content: "new tail", NewNumber: n + 1},
		{Kind: Added, Content: "extra", NewNumber: n + 2},
	}, got[n:])

	stats := ComputeStats(got)
	assert.Equal(t, n, stats.Unchanged)
}

func TestParseAlgorithm(t *testing.T) {
	for in, exp := range map[string]Algorithm{"": AlgorithmGreedy, "greedy": AlgorithmGreedy, "LCS": AlgorithmLCS, " lcs ": AlgorithmLCS} {
		got, ok := ParseAlgorithm(in)
		require.True(t, ok, in)
		assert.Equal(t, exp, got, in)
	}
	_, ok := ParseAlgorithm("myers")
	assert.False(t, ok)
	assert.Equal(t, "lcs", AlgorithmLCS.String())
	assert.Equal(t, "greedy", AlgorithmGreedy.String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.Equal(t, " -+", Unchanged.Prefix()+Removed.Prefix()+Added.Prefix())
}

func TestComputeStats(t *testing.T) {
	lines := DiffLines("hello world\nfoo", "hello world\nfoo bar baz")
	s := ComputeStats(lines)
	assert.Equal(t, Stats{Unchanged: 1, Added: 1, Removed: 1, WordsAdded: 3, WordsRemoved: 1, CharDelta: 8}, s)
	assert.True(t, s.HasChanges())
	assert.Equal(t, "1 addition(+), 1 deletion(-), 1 unchanged; words +3 -1; chars +8", s.String())

	none := ComputeStats(DiffLines("a", "a"))
	assert.False(t, none.HasChanges())
	assert.Equal(t, "0 additions(+), 0 deletions(-), 1 unchanged; words +0 -0; chars +0", none.String())
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name  string
		lines []Line
		want  string
	}{
		{name: "missing old number", lines: []Line{{Kind: Removed, Content: "a"}}, want: "OldNumber=0"},
		{name: "stray new number", lines: []Line{{Kind: Removed, Content: "a", OldNumber: 1, NewNumber: 1}}, want: "NewNumber=1"},
		{name: "wrong content", lines: []Line{{Kind: Unchanged, Content: "z", OldNumber: 1, NewNumber: 1}}, want: "content"},
		{name: "out of order", lines: []Line{{Kind: Removed, Content: "b", OldNumber: 2}, {Kind: Removed, Content: "a", OldNumber: 1}}, want: "out of order"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate("a\nb", "a", tc.lines, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
