package cli

import (
	"fmt"
	"strings"

	"github.com/codalotl/annotext/internal/config"
	"github.com/codalotl/annotext/internal/diff"
	qcli "github.com/codalotl/annotext/internal/q/cli"
	"github.com/codalotl/annotext/internal/simplelogger"
	"github.com/codalotl/annotext/internal/theme"
)

func newDiffCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:  "diff",
		Short: "Compare OLD and NEW line by line.",
		Long: `The default greedy algorithm is fast but may silently skip a line that appears on both sides out of order; --lcs (or config
diffalgorithm "lcs") accounts for every line. A single trailing newline is ignored on both sides.`,
		Usage: "OLD NEW",
		Args:  qcli.ExactArgs(2),
	}
	fs := cmd.Flags()
	lcs := fs.Bool("lcs", 0, false, "Use the longest-common-subsequence algorithm.")
	contextLines := fs.Int("context", 'U', 0, "Unchanged lines around each hunk (default: config context).")
	htmlFormat := fs.String("html", 0, "", `Render HTML instead: "inline" or "side".`)
	plain := fs.Bool("plain", 0, false, "Print every line with its marker and no hunk headers.")
	stat := fs.Bool("stat", 0, false, "Print a summary line after the diff.")

	cmd.Run = s.run("diff", func(c *qcli.Context, cfg config.Config) error {
		ctxLines := cfg.Context
		if c.Command.Flags().Changed("context") {
			if *contextLines < 0 {
				return qcli.Usagef("invalid --context: must be >= 0 (got %d)", *contextLines)
			}
			ctxLines = *contextLines
		}
		algorithm, _ := diff.ParseAlgorithm(cfg.DiffAlgorithm)
		if *lcs {
			algorithm = diff.AlgorithmLCS
		}
		var format diff.HTMLFormat
		if *htmlFormat != "" {
			var ok bool
			if format, ok = diff.ParseHTMLFormat(*htmlFormat); !ok {
				return qcli.Usagef("invalid --html %q: want \"inline\" or \"side\"", *htmlFormat)
			}
		}

		oldPath, newPath := c.Args[0], c.Args[1]
		oldData, err := readInput(c, oldPath)
		if err != nil {
			return err
		}
		newData, err := readInput(c, newPath)
		if err != nil {
			return err
		}

		lines := diff.Compute(trimFinalNewline(oldData), trimFinalNewline(newData), diff.Options{Algorithm: algorithm})
		stats := diff.ComputeStats(lines)
		simplelogger.Log("diff: %s, %d lines, %s", algorithm, len(lines), stats)

		var rendered string
		switch {
		case *htmlFormat != "":
			rendered = diff.RenderHTML(lines, format)
		case *plain:
			rendered = diff.RenderPlain(lines)
		case stats.HasChanges():
			if s.useColor(c.Out, cfg) {
				rendered = diff.RenderUnified(sanitizeLines(lines), theme.Sanitize(oldPath), theme.Sanitize(newPath), ctxLines, true)
			} else {
				rendered = diff.RenderUnified(lines, oldPath, newPath, ctxLines, false)
			}
		}
		if rendered != "" {
			if _, err := fmt.Fprintln(c.Out, rendered); err != nil {
				return err
			}
		}
		if *stat {
			if _, err := fmt.Fprintln(c.Out, stats); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

func trimFinalNewline(b []byte) string {
	return strings.TrimSuffix(string(b), "\n")
}

// sanitizeLines returns a copy of lines with Content made safe for a terminal, so escapes in the compared files cannot mix with the ones we emit.
func sanitizeLines(lines []diff.Line) []diff.Line {
	out := make([]diff.Line, len(lines))
	for i, ln := range lines {
		ln.Content = theme.Sanitize(ln.Content)
		out[i] = ln
	}
	return out
}

func sanitizeHunks(hunks []diff.Hunk) []diff.Hunk {
	out := make([]diff.Hunk, len(hunks))
	for i, h := range hunks {
		h.Section = theme.Sanitize(h.Section)
		h.Lines = sanitizeLines(h.Lines)
		out[i] = h
	}
	return out
}

func newPatchCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:  "patch",
		Short: "Parse the hunks of a unified diff and print them.",
		Long:  `Text outside hunks (file headers, "diff --git" lines) is ignored. FILE may be "-" for stdin.`,
		Usage: "FILE",
		Args:  qcli.ExactArgs(1),
	}
	stat := cmd.Flags().Bool("stat", 0, false, "Print a summary line after the hunks.")

	cmd.Run = s.run("patch", func(c *qcli.Context, cfg config.Config) error {
		data, err := readInput(c, c.Args[0])
		if err != nil {
			return err
		}
		hunks := diff.ParsePatch(string(data))
		if len(hunks) == 0 {
			return fmt.Errorf("no hunks found in %s", c.Args[0])
		}

		var all []diff.Line
		for _, h := range hunks {
			all = append(all, h.Lines...)
		}
		simplelogger.Log("patch: %d hunks, %d lines", len(hunks), len(all))

		color := s.useColor(c.Out, cfg)
		if color {
			hunks = sanitizeHunks(hunks)
		}
		if _, err := fmt.Fprintln(c.Out, diff.RenderHunks(hunks, color)); err != nil {
			return err
		}
		if *stat {
			_, err = fmt.Fprintf(c.Out, "hunks: %d; %s\n", len(hunks), diff.ComputeStats(all))
		}
		return err
	})
	return cmd
}
