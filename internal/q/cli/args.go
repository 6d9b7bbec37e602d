package cli

import "fmt"

// NoArgs rejects any positional arg.
func NoArgs(args []string) error {
	if len(args) > 0 {
		return Usagef("unexpected argument %q", args[0])
	}
	return nil
}

// ExactArgs requires exactly n positional args.
func ExactArgs(n int) ArgsFunc {
	return RangeArgs(n, n)
}

// RangeArgs requires between min and max positional args, inclusive.
func RangeArgs(min, max int) ArgsFunc {
	return func(args []string) error {
		if len(args) >= min && len(args) <= max {
			return nil
		}
		want := countArgs(min)
		if min != max {
			want = fmt.Sprintf("%d to %s", min, countArgs(max))
		}
		return Usagef("expected %s, got %d", want, len(args))
	}
}

func countArgs(n int) string {
	if n == 1 {
		return "1 arg"
	}
	return fmt.Sprintf("%d args", n)
}
