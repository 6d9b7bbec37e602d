package diff

import (
	"fmt"
	"strings"
)

// validate checks lines against the texts they were computed from. Every emitted line must carry the content of the source line its numbers point at, and numbers
// on each side must strictly increase. If total, every old and new line must also be accounted for, so that reconstruct(lines) returns exactly oldText and newText.
func validate(oldText, newText string, lines []Line, total bool) error {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	lastOld, lastNew := 0, 0
	for i, ln := range lines {
		hasOld := ln.Kind == Unchanged || ln.Kind == Removed
		hasNew := ln.Kind == Unchanged || ln.Kind == Added

		if hasOld != (ln.OldNumber > 0) {
			return fmt.Errorf("line[%d] (%s): OldNumber=%d", i, ln.Kind, ln.OldNumber)
		}
		if hasNew != (ln.NewNumber > 0) {
			return fmt.Errorf("line[%d] (%s): NewNumber=%d", i, ln.Kind, ln.NewNumber)
		}
		if hasOld {
			if ln.OldNumber <= lastOld || ln.OldNumber > len(oldLines) {
				return fmt.Errorf("line[%d]: OldNumber=%d out of order (previous %d, %d old lines)", i, ln.OldNumber, lastOld, len(oldLines))
			}
			if total && ln.OldNumber != lastOld+1 {
				return fmt.Errorf("line[%d]: old lines %d..%d unaccounted for", i, lastOld+1, ln.OldNumber-1)
			}
			if oldLines[ln.OldNumber-1] != ln.Content {
				return fmt.Errorf("line[%d]: content %q != old line %d %q", i, ln.Content, ln.OldNumber, oldLines[ln.OldNumber-1])
			}
			lastOld = ln.OldNumber
		}
		if hasNew {
			if ln.NewNumber <= lastNew || ln.NewNumber > len(newLines) {
				return fmt.Errorf("line[%d]: NewNumber=%d out of order (previous %d, %d new lines)", i, ln.NewNumber, lastNew, len(newLines))
			}
			if total && ln.NewNumber != lastNew+1 {
				return fmt.Errorf("line[%d]: new lines %d..%d unaccounted for", i, lastNew+1, ln.NewNumber-1)
			}
			if newLines[ln.NewNumber-1] != ln.Content {
				return fmt.Errorf("line[%d]: content %q != new line %d %q", i, ln.Content, ln.NewNumber, newLines[ln.NewNumber-1])
			}
			lastNew = ln.NewNumber
		}
	}

	if total {
		if lastOld != len(oldLines) {
			return fmt.Errorf("old lines %d..%d unaccounted for", lastOld+1, len(oldLines))
		}
		if lastNew != len(newLines) {
			return fmt.Errorf("new lines %d..%d unaccounted for", lastNew+1, len(newLines))
		}
	}
	return nil
}

// Reconstruct joins the old-side lines (Unchanged and Removed) and the new-side lines (Unchanged and Added) with '\n'. For a diff that accounts for every line (AlgorithmLCS),
// the results equal the original texts.
func Reconstruct(lines []Line) (oldText, newText string) {
	var oldParts, newParts []string
	for _, ln := range lines {
		switch ln.Kind {
		case Unchanged:
			oldParts = append(oldParts, ln.Content)
			newParts = append(newParts, ln.Content)
		case Removed:
			oldParts = append(oldParts, ln.Content)
		case Added:
			newParts = append(newParts, ln.Content)
		}
	}
	return strings.Join(oldParts, "\n"), strings.Join(newParts, "\n")
}
