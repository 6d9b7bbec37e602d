package diff

import (
	"strings"

	"github.com/codalotl/annotext/internal/simplelogger"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffLCS diffs oldText to newText line by line with diffmatchpatch. Every old line is emitted as Unchanged or Removed and every new line as Unchanged or Added.
// If the result ever fails the total-coverage check, the greedy DiffLines result is returned instead.
func diffLCS(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()

	// Terminate both texts so every line, including the last, carries its '\n' and lines compare equal regardless of position.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText+"\n", newText+"\n")
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)
	// Line indices are not stored as their own rune values past the surrogate range, so only diffmatchpatch can map them back.
	lineDiffs = dmp.DiffCharsToLines(lineDiffs, lineArray)

	var lines []Line
	oldNo, newNo := 0, 0
	for _, d := range lineDiffs {
		if d.Text == "" {
			continue
		}
		for _, content := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNo++
				newNo++
				lines = append(lines, Line{Kind: Unchanged, Content: content, OldNumber: oldNo, NewNumber: newNo})
			case diffmatchpatch.DiffDelete:
				oldNo++
				lines = append(lines, Line{Kind: Removed, Content: content, OldNumber: oldNo})
			case diffmatchpatch.DiffInsert:
				newNo++
				lines = append(lines, Line{Kind: Added, Content: content, NewNumber: newNo})
			}
		}
	}

	if err := validate(oldText, newText, lines, true); err != nil {
		simplelogger.Log("diffLCS: %v; using greedy diff", err)
		return DiffLines(oldText, newText)
	}
	return lines
}
