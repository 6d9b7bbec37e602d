package diff

import "strings"

// Kind classifies a Line.
type Kind uint8

const (
	Unchanged Kind = iota // present on both sides
	Removed               // present only on the old side
	Added                 // present only on the new side
)

// String returns "unchanged", "removed", or "added".
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff marker for k: " ", "-", or "+".
func (k Kind) Prefix() string {
	switch k {
	case Removed:
		return "-"
	case Added:
		return "+"
	default:
		return " "
	}
}

// Line is one output line of a diff.
type Line struct {
	Kind    Kind
	Content string // without '\n'

	OldNumber int // 1-based line number in the old text; 0 for Added
	NewNumber int // 1-based line number in the new text; 0 for Removed
}

// Algorithm selects how Compute aligns lines.
type Algorithm int

const (
	AlgorithmGreedy Algorithm = iota // membership-based two-pointer walk (see DiffLines)
	AlgorithmLCS                     // minimal line diff; accounts for every line
)

// String returns "greedy" or "lcs".
func (a Algorithm) String() string {
	if a == AlgorithmLCS {
		return "lcs"
	}
	return "greedy"
}

// ParseAlgorithm parses "greedy" or "lcs" (case-insensitive). The empty string is AlgorithmGreedy.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "greedy":
		return AlgorithmGreedy, true
	case "lcs":
		return AlgorithmLCS, true
	}
	return AlgorithmGreedy, false
}

// Options configures Compute. The zero value selects AlgorithmGreedy.
type Options struct {
	Algorithm Algorithm
}

// Compute diffs oldText to newText with the algorithm in opts.
func Compute(oldText, newText string, opts Options) []Line {
	if opts.Algorithm == AlgorithmLCS {
		return diffLCS(oldText, newText)
	}
	return DiffLines(oldText, newText)
}

// DiffLines splits oldText and newText on '\n' and walks both with one pointer each. At every step, in order:
//  1. If both lines are equal, emit Unchanged and advance both.
//  2. Else if the old line does not occur in the rest of new (from the new pointer on), emit Removed and advance old.
//  3. Else if the new line does not occur anywhere in old, emit Added and advance new.
//  4. Else advance both and emit nothing.
//
// An exhausted side counts as containing nothing, so leftover lines on one side are Removed or Added unless rule 3 finds a leftover new line elsewhere in old, in
// which case rule 4 skips it. The walk ends when both pointers are past the end.
func DiffLines(oldText, newText string) []Line {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	// A line occurs in newLines[j:] iff its last index is >= j.
	lastInNew := make(map[string]int, len(newLines))
	for j, l := range newLines {
		lastInNew[l] = j
	}
	inOld := make(map[string]struct{}, len(oldLines))
	for _, l := range oldLines {
		inOld[l] = struct{}{}
	}

	out := make([]Line, 0, max(len(oldLines), len(newLines)))
	i, j := 0, 0
	for i < len(oldLines) || j < len(newLines) {
		oldOK := i < len(oldLines)
		newOK := j < len(newLines)

		switch {
		case oldOK && newOK && oldLines[i] == newLines[j]:
			out = append(out, Line{Kind: Unchanged, Content: oldLines[i], OldNumber: i + 1, NewNumber: j + 1})
			i++
			j++
		case oldOK && !occursFrom(lastInNew, oldLines[i], j):
			out = append(out, Line{Kind: Removed, Content: oldLines[i], OldNumber: i + 1})
			i++
		case newOK && !contains(inOld, newLines[j]):
			out = append(out, Line{Kind: Added, Content: newLines[j], NewNumber: j + 1})
			j++
		default:
			i++
			j++
		}
	}
	return out
}

func occursFrom(last map[string]int, line string, from int) bool {
	idx, ok := last[line]
	return ok && idx >= from
}

func contains(set map[string]struct{}, line string) bool {
	_, ok := set[line]
	return ok
}
