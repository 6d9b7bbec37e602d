package diff

import (
	"fmt"
	"strings"
)

// Stats summarizes a diff.
type Stats struct {
	Unchanged    int
	Added        int
	Removed      int
	WordsAdded   int // whitespace-separated words on Added lines
	WordsRemoved int // whitespace-separated words on Removed lines
	CharDelta    int // bytes on Added lines minus bytes on Removed lines
}

// ComputeStats counts lines, words, and bytes by kind.
func ComputeStats(lines []Line) Stats {
	var s Stats
	for _, ln := range lines {
		switch ln.Kind {
		case Unchanged:
			s.Unchanged++
		case Added:
			s.Added++
			s.WordsAdded += len(strings.Fields(ln.Content))
			s.CharDelta += len(ln.Content)
		case Removed:
			s.Removed++
			s.WordsRemoved += len(strings.Fields(ln.Content))
			s.CharDelta -= len(ln.Content)
		}
	}
	return s
}

// HasChanges reports whether any line was added or removed.
func (s Stats) HasChanges() bool {
	return s.Added > 0 || s.Removed > 0
}

// String returns a one-line summary like "2 additions(+), 1 deletion(-), 10 unchanged; words +5 -2; chars +12".
func (s Stats) String() string {
	return fmt.Sprintf("%s(+), %s(-), %d unchanged; words +%d -%d; chars %+d",
		plural(s.Added, "addition"), plural(s.Removed, "deletion"), s.Unchanged, s.WordsAdded, s.WordsRemoved, s.CharDelta)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
