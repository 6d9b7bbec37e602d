package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configures Run.
type Options struct {
	Args []string // argv without the program name

	// In, Out, and Err default to the process's standard streams when nil.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is what a RunFunc receives. Flag values are read through the pointers returned when the flags were defined.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run parses opts.Args against the tree rooted at root, runs the selected command, and returns the process exit code: 0 on success, 2 for usage errors, 1 (or the
// code of an ExitCoder) for handler errors. Errors are printed to opts.Err as "error: <message>".
//
// Flags may appear anywhere after the command that defines them. Tokens after "--" are positional. "-h" and "--help" print help for the command selected so far.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run needs a named root command")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Context{Context: ctx, In: opts.In, Out: opts.Out, Err: opts.Err}
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}

	cmd, args, help, err := parse(root, opts.Args)
	if help {
		writeHelp(c.Out, cmd)
		return 0
	}
	if err == nil && cmd.Run == nil {
		if len(args) == 0 {
			err = Usagef("missing command")
		} else {
			err = Usagef("unknown command %q", args[0])
		}
	}
	if err == nil && cmd.Args != nil {
		err = cmd.Args(args)
	}
	if err == nil {
		c.Command = cmd
		c.Args = args
		err = cmd.Run(c)
	}
	return report(c.Err, cmd, err)
}

// report prints err and returns its exit code.
func report(w io.Writer, cmd *Command, err error) int {
	if err == nil {
		return 0
	}
	code := 1
	var ec ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	if code == 0 {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
	if code == 2 {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", commandPath(cmd))
	}
	return code
}

// parse selects the deepest command named by argv and applies flags. It returns the selected command even on error so the caller can point at its help.
func parse(root *Command, argv []string) (cmd *Command, args []string, help bool, err error) {
	cmd = root
	selecting := true
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "--":
			return cmd, append(args, argv[i+1:]...), false, nil
		case tok == "-h" || tok == "--help":
			return cmd, nil, true, nil
		case len(tok) > 1 && tok[0] == '-':
			used, err := setFlag(flagsFor(cmd), tok, argv[i+1:])
			if err != nil {
				return cmd, nil, false, err
			}
			i += used
		case selecting && cmd.lookup(tok) != nil:
			cmd = cmd.lookup(tok)
		default:
			selecting = false
			args = append(args, tok)
		}
	}
	return cmd, args, false, nil
}

// setFlag applies the flag token tok, reading its value from rest when needed. It returns how many tokens of rest it consumed.
//
// Accepted forms: --name, --name=value, --name value, -x, -x=value, -x value, and -xvalue for flags that take a value.
func setFlag(fs *FlagSet, tok string, rest []string) (int, error) {
	var f *flag
	var value string
	hasValue := false

	if strings.HasPrefix(tok, "--") {
		name := tok[2:]
		if i := strings.IndexByte(name, '='); i >= 0 {
			name, value, hasValue = name[:i], name[i+1:], true
		}
		f = fs.long[name]
	} else {
		r := []rune(tok[1:])
		f = fs.short[r[0]]
		if tail := string(r[1:]); tail != "" {
			value, hasValue = strings.TrimPrefix(tail, "="), true
			if f != nil && f.value.typeName() == "" && !strings.HasPrefix(tail, "=") {
				f = nil // -sx is not a bool with a value
			}
		}
	}
	if f == nil {
		return 0, Usagef("unknown flag %s", tok)
	}

	used := 0
	if !hasValue {
		if f.value.typeName() == "" {
			value = "true"
		} else if len(rest) == 0 || rest[0] == "--" {
			return 0, Usagef("flag %s needs a value", f.display())
		} else {
			value, used = rest[0], 1
		}
	}
	if err := f.value.set(value); err != nil {
		return 0, Usagef("invalid value for %s: %v", f.display(), err)
	}
	f.changed = true
	return used, nil
}
