package cli

import (
	"fmt"
	"strings"

	"github.com/codalotl/annotext/internal/config"
	"github.com/codalotl/annotext/internal/markdown"
	qcli "github.com/codalotl/annotext/internal/q/cli"
	"github.com/codalotl/annotext/internal/simplelogger"
)

func newCodeBlocksCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:  "codeblocks",
		Short: "Print the fenced code blocks of a markdown file with syntax coloring.",
		Usage: "FILE.md",
		Args:  qcli.ExactArgs(1),
	}
	lang := cmd.Flags().String("lang", 'l', "", "Only print blocks whose info string starts with this language.")

	cmd.Run = s.run("codeblocks", func(c *qcli.Context, cfg config.Config) error {
		data, err := readInput(c, c.Args[0])
		if err != nil {
			return err
		}
		th, err := s.theme(c.Out, cfg)
		if err != nil {
			return err
		}

		blocks := markdown.CodeBlocks(data)
		simplelogger.Log("codeblocks: %d blocks", len(blocks))
		printed := 0
		for _, b := range blocks {
			if *lang != "" && !strings.EqualFold(b.Language, *lang) {
				continue
			}
			if printed > 0 {
				fmt.Fprintln(c.Out)
			}
			printed++

			label := b.Language
			if label == "" {
				label = "text"
			}
			if _, err := fmt.Fprintf(c.Out, "%s:%d: %s\n", c.Args[0], b.StartLine, label); err != nil {
				return err
			}
			if b.Code == "" {
				continue
			}
			if err := writeTokenLines(c, b.Code, b.Tokens(), th, cfg.TabWidth, "    "); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}
