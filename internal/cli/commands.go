package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/codalotl/annotext/internal/config"
	qcli "github.com/codalotl/annotext/internal/q/cli"
	"github.com/codalotl/annotext/internal/simplelogger"
	"github.com/codalotl/annotext/internal/theme"
	"golang.org/x/term"
)

// session holds state shared by every command of one Run: the global flags and the lazily loaded configuration.
type session struct {
	noColor   *bool
	themeName *string

	once sync.Once
	cfg  config.Config
	err  error
}

func (s *session) config() (config.Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = config.Load()
	})
	return s.cfg, s.err
}

// run wraps a handler with config loading and timing logs. Configuration errors exit with 1.
func (s *session) run(event string, next func(c *qcli.Context, cfg config.Config) error) qcli.RunFunc {
	return func(c *qcli.Context) error {
		defer simplelogger.Timed(event)()
		cfg, err := s.config()
		if err != nil {
			return qcli.ExitError{Code: 1, Err: err}
		}
		return next(c, cfg)
	}
}

// useColor decides whether to emit ANSI escapes. --no-color wins, then the color setting; "auto" colors only when out is a terminal.
func (s *session) useColor(out io.Writer, cfg config.Config) bool {
	if *s.noColor {
		return false
	}
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// theme returns the theme to paint with: theme.None when color is off, else --theme or the configured theme.
func (s *session) theme(out io.Writer, cfg config.Config) (theme.Theme, error) {
	if !s.useColor(out, cfg) {
		return theme.None, nil
	}
	name := cfg.Theme
	if *s.themeName != "" {
		name = *s.themeName
	}
	th, ok := theme.ByName(name)
	if !ok {
		return theme.Theme{}, qcli.Usagef("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", "))
	}
	return th, nil
}

func newRootCommand() *qcli.Command {
	s := &session{}

	root := &qcli.Command{
		Name:  "annotext",
		Short: "Highlight matches, color source, and diff text.",
	}
	pf := root.PersistentFlags()
	s.noColor = pf.Bool("no-color", 0, false, "Disable ANSI colors.")
	s.themeName = pf.String("theme", 0, "", "Color theme: "+strings.Join(theme.Names(), ", ")+" (default: config theme).")

	versionCmd := &qcli.Command{
		Name:  "version",
		Short: "Print annotext version.",
		Args:  qcli.NoArgs,
		Run: func(c *qcli.Context) error {
			_, err := fmt.Fprintln(c.Out, Version)
			return err
		},
	}

	root.AddCommand(
		newFindCommand(s),
		newTokenizeCommand(s),
		newLanguagesCommand(),
		newDiffCommand(s),
		newPatchCommand(s),
		newCodeBlocksCommand(s),
		newConfigCommand(s),
		versionCmd,
	)
	return root
}

// readInput reads path, or c.In when path is "-".
func readInput(c *qcli.Context, path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(c.In)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	simplelogger.Log("read %s: %d bytes", path, len(data))
	return data, nil
}
