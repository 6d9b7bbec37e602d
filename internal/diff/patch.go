package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// Hunk is one "@@ ... @@" section of a unified diff.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Section  string // text after the closing "@@", usually an enclosing function; may be empty
	Lines    []Line
}

// Header returns the hunk's "@@ -a,b +c,d @@" header line, including Section if set.
func (h Hunk) Header() string {
	s := "@@ -" + strconv.Itoa(h.OldStart) + "," + strconv.Itoa(h.OldCount) + " +" + strconv.Itoa(h.NewStart) + "," + strconv.Itoa(h.NewCount) + " @@"
	if h.Section != "" {
		s += " " + h.Section
	}
	return s
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@ ?(.*)$`)

type patchParser struct {
	lines []string
	idx   int
}

func (p *patchParser) eof() bool { return p.idx >= len(p.lines) }

func (p *patchParser) peek() (string, bool) {
	if p.eof() {
		return "", false
	}
	return p.lines[p.idx], true
}

func (p *patchParser) next() (string, bool) {
	line, ok := p.peek()
	if ok {
		p.idx++
	}
	return line, ok
}

// ParsePatch parses unified-diff text (for example the "patch" field of a GitHub file) into hunks. Lines before the first hunk header, such as "diff --git" or
// "---"/"+++" file headers, are ignored. Within a hunk, " ", "-", and "+" lines are read with running line numbers until the header's counts are satisfied; an
// empty line counts as an empty context line. "\ No newline at end of file" markers are skipped. A count omitted from the header defaults to 1.
//
// ParsePatch never fails: malformed headers are skipped along with their bodies, and a hunk cut short by the end of input keeps the lines it has.
func ParsePatch(patch string) []Hunk {
	p := &patchParser{lines: strings.Split(strings.ReplaceAll(patch, "\r\n", "\n"), "\n")}

	var hunks []Hunk
	for !p.eof() {
		line, _ := p.next()
		m := hunkHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h := Hunk{
			OldStart: atoi(m[1], 0),
			OldCount: atoi(m[2], 1),
			NewStart: atoi(m[3], 0),
			NewCount: atoi(m[4], 1),
			Section:  m[5],
		}
		h.Lines = parseHunkBody(p, h)
		hunks = append(hunks, h)
	}
	return hunks
}

func parseHunkBody(p *patchParser, h Hunk) []Line {
	var lines []Line
	oldNo, newNo := h.OldStart, h.NewStart
	oldLeft, newLeft := h.OldCount, h.NewCount

	for oldLeft > 0 || newLeft > 0 {
		next, ok := p.peek()
		if !ok || strings.HasPrefix(next, "@@ ") {
			break
		}
		p.next()

		if next == "" {
			next = " "
		}
		switch next[0] {
		case ' ':
			lines = append(lines, Line{Kind: Unchanged, Content: next[1:], OldNumber: oldNo, NewNumber: newNo})
			oldNo++
			newNo++
			oldLeft--
			newLeft--
		case '-':
			lines = append(lines, Line{Kind: Removed, Content: next[1:], OldNumber: oldNo})
			oldNo++
			oldLeft--
		case '+':
			lines = append(lines, Line{Kind: Added, Content: next[1:], NewNumber: newNo})
			newNo++
			newLeft--
		case '\\':
			// "\ No newline at end of file"
		default:
			// Not part of a hunk body; the counts were wrong. Give the line back so the outer loop can look for the next header.
			p.idx--
			return lines
		}
	}

	// A trailing marker belongs to the last body line.
	if next, ok := p.peek(); ok && strings.HasPrefix(next, `\`) {
		p.next()
	}
	return lines
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
