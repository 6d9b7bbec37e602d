package cli

import (
	"fmt"
	"strings"

	"github.com/codalotl/annotext/internal/config"
	"github.com/codalotl/annotext/internal/detectlang"
	qcli "github.com/codalotl/annotext/internal/q/cli"
	"github.com/codalotl/annotext/internal/simplelogger"
	"github.com/codalotl/annotext/internal/span"
	"github.com/codalotl/annotext/internal/theme"
	"github.com/codalotl/annotext/internal/tokenize"
)

func newTokenizeCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:    "tokenize",
		Aliases: []string{"cat"},
		Short:   "Print FILE with syntax coloring.",
		Long: `The language comes from --lang, else from the file name or shebang line. Unknown languages are tokenized generically.
FILE may be "-" for stdin.`,
		Usage: "FILE",
		Args:  qcli.ExactArgs(1),
	}
	fs := cmd.Flags()
	lang := fs.String("lang", 'l', "", "Language id or alias (see `annotext languages`).")
	kinds := fs.Bool("kinds", 'k', false, "Print one token per line as KIND<tab>TEXT instead of coloring.")

	cmd.Run = s.run("tokenize", func(c *qcli.Context, cfg config.Config) error {
		path := c.Args[0]
		data, err := readInput(c, path)
		if err != nil {
			return err
		}

		languageID := *lang
		if languageID == "" {
			if path != "-" {
				languageID = detectlang.Detect(path, data)
			} else {
				languageID = detectlang.FromShebang(data)
			}
		}
		simplelogger.Log("tokenize: language %q (supported=%v)", languageID, tokenize.DefaultRegistry.Supports(languageID))

		text := strings.TrimSuffix(string(data), "\n")
		lines := tokenize.TokenizeText(text, languageID)
		if *kinds {
			for _, toks := range lines {
				for _, tok := range toks {
					if _, err := fmt.Fprintf(c.Out, "%s\t%q\n", tok.Kind, tok.Text); err != nil {
						return err
					}
				}
			}
			return nil
		}

		th, err := s.theme(c.Out, cfg)
		if err != nil {
			return err
		}
		return writeTokenLines(c, text, lines, th, cfg.TabWidth, "")
	})
	return cmd
}

// writeTokenLines paints each line of lines, the tokenization of text, prefixed with indent. An empty source line is printed empty rather than as its
// single-space token.
func writeTokenLines(c *qcli.Context, text string, lines [][]tokenize.Token, th theme.Theme, tabWidth int, indent string) error {
	source := strings.Split(text, "\n")
	for i, toks := range lines {
		painted := ""
		if i >= len(source) || source[i] != "" {
			painted = theme.PaintTabs(span.FromTokens(toks), th, tabWidth)
		}
		if _, err := fmt.Fprintf(c.Out, "%s%s\n", indent, painted); err != nil {
			return err
		}
	}
	return nil
}

func newLanguagesCommand() *qcli.Command {
	return &qcli.Command{
		Name:  "languages",
		Short: "List the languages tokenize understands.",
		Args:  qcli.NoArgs,
		Run: func(c *qcli.Context) error {
			for _, id := range tokenize.DefaultRegistry.Languages() {
				l, _ := tokenize.DefaultRegistry.Lookup(id)
				line := id
				if len(l.Aliases) > 0 {
					line += "\t" + strings.Join(l.Aliases, ", ")
				}
				if _, err := fmt.Fprintln(c.Out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
