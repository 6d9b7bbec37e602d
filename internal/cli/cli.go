// Package cli implements the annotext command line: find, tokenize, diff, patch, codeblocks, languages, and config.
package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	qcli "github.com/codalotl/annotext/internal/q/cli"
)

// Version is the annotext version. It is a var so builds can override it with -ldflags "-X".
var Version = "0.3.0"

// RunOptions overrides standard I/O, mostly for tests. Nil fields use the process's streams.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args, including the program name).
//
// It returns the exit code and, when the code is non-zero, an error carrying what was printed to stderr:
//   - 0: success
//   - 1: the command failed, or (find) nothing matched
//   - 2: bad flags or args
//
// Messages have already been written to opts.Err by the time Run returns.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	// q/cli reports only an exit code, so stderr is teed to build the returned error.
	var stderrBuf bytes.Buffer
	code := qcli.Run(context.Background(), newRootCommand(), qcli.Options{
		Args: argv,
		In:   in,
		Out:  out,
		Err:  io.MultiWriter(errW, &stderrBuf),
	})
	if code == 0 {
		return 0, nil
	}
	msg := strings.TrimSpace(stderrBuf.String())
	if msg == "" {
		msg = "command failed"
	}
	return code, errors.New(msg)
}
