package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codalotl/annotext/internal/config"
	"github.com/codalotl/annotext/internal/match"
	qcli "github.com/codalotl/annotext/internal/q/cli"
	"github.com/codalotl/annotext/internal/q/uni"
	"github.com/codalotl/annotext/internal/simplelogger"
	"github.com/codalotl/annotext/internal/span"
	"github.com/codalotl/annotext/internal/theme"
)

const ellipsis = "…"

// jsonMatch is the --json form of a match. Line and Column are 1-based; Column counts display columns with tabs expanded.
type jsonMatch struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func newFindCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:  "find",
		Short: "Print the lines of FILE that contain any query, with matches highlighted.",
		Long: `Queries are literal. When queries overlap, the earliest match wins and later overlapping matches are dropped whole.
FILE may be "-" for stdin. Exits with 1 when nothing matches.`,
		Usage: "FILE",
		Args:  qcli.ExactArgs(1),
	}
	fs := cmd.Flags()
	queries := fs.StringSlice("query", 'q', nil, "Text to find (repeatable).")
	caseSensitive := fs.Bool("case-sensitive", 's', false, "Match case (default: config casesensitive).")
	asJSON := fs.Bool("json", 0, false, "Print matches as a JSON array.")
	replace := fs.String("replace", 'r', "", "Print FILE with every match replaced by this text.")
	width := fs.Int("width", 'w', 0, "Truncate printed lines to this many columns (0: no limit).")

	cmd.Run = s.run("find", func(c *qcli.Context, cfg config.Config) error {
		if len(*queries) == 0 {
			return qcli.Usagef("at least one -q/--query is required")
		}
		if *width < 0 {
			return qcli.Usagef("invalid --width: must be >= 0 (got %d)", *width)
		}
		data, err := readInput(c, c.Args[0])
		if err != nil {
			return err
		}
		text := string(data)
		sensitive := cfg.CaseSensitive
		if c.Command.Flags().Changed("case-sensitive") {
			sensitive = *caseSensitive
		}
		matches := match.Find(text, *queries, sensitive)
		simplelogger.Log("find: %d queries, %d matches", len(*queries), len(matches))

		switch {
		case *asJSON:
			err = writeMatchesJSON(c, text, matches, cfg.TabWidth)
		case c.Command.Flags().Changed("replace"):
			_, err = fmt.Fprint(c.Out, match.Replace(text, matches, *replace))
		default:
			th, terr := s.theme(c.Out, cfg)
			if terr != nil {
				return terr
			}
			err = writeMatchLines(c, text, matches, th, cfg.TabWidth, *width)
		}
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return qcli.ExitError{Code: 1}
		}
		return nil
	})
	return cmd
}

// writeMatchLines prints each line holding a match as "LINE:COL: text", where COL is the display column of the line's first match and text is painted with th.
func writeMatchLines(c *qcli.Context, text string, matches []match.Interval, th theme.Theme, tabWidth, width int) error {
	for _, lm := range match.ByLine(text, matches) {
		col := uni.Column(lm.Text, lm.Matches[0].Start, tabWidth, nil) + 1

		line := lm.Text
		suffix := ""
		if width > 0 {
			if t := uni.Truncate(line, width, ellipsis, nil); t != line {
				line = strings.TrimSuffix(t, ellipsis)
				suffix = ellipsis
			}
		}
		var kept []match.Interval
		for _, m := range lm.Matches {
			if m.Start < m.End && m.End <= len(line) {
				kept = append(kept, m)
			}
		}
		spans := span.FromMatches(line, kept)
		if err := span.Validate(line, spans); err != nil {
			simplelogger.Log("find: line %d: %v", lm.Line, err)
		}
		if suffix != "" {
			spans = append(spans, span.Span{Text: suffix, Class: span.Plain, Start: len(line), End: len(line) + len(suffix)})
		}
		if _, err := fmt.Fprintf(c.Out, "%d:%d: %s\n", lm.Line, col, theme.PaintTabs(spans, th, tabWidth)); err != nil {
			return err
		}
	}
	return nil
}

func writeMatchesJSON(c *qcli.Context, text string, matches []match.Interval, tabWidth int) error {
	out := make([]jsonMatch, 0, len(matches))
	line, lineStart, scanned := 1, 0, 0
	for _, m := range matches {
		for i := scanned; i < m.Start; i++ {
			if text[i] == '\n' {
				line++
				lineStart = i + 1
			}
		}
		scanned = m.Start
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text) - lineStart
		}
		out = append(out, jsonMatch{
			Start:  m.Start,
			End:    m.End,
			Text:   m.Text,
			Line:   line,
			Column: uni.Column(text[lineStart:lineStart+lineEnd], m.Start-lineStart, tabWidth, nil) + 1,
		})
	}
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
