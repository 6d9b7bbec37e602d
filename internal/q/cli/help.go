package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func commandPath(cmd *Command) string {
	var names []string
	for _, c := range cmd.lineage() {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

func writeHelp(w io.Writer, cmd *Command) {
	path := commandPath(cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", path, cmd.Short)
	} else {
		fmt.Fprintln(w, path)
	}
	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	flags := flagsFor(cmd).sorted()
	usage := []string{path}
	if len(cmd.children) > 0 {
		usage = append(usage, "<command>")
	}
	if len(flags) > 0 {
		usage = append(usage, "[flags]")
	}
	if cmd.Usage != "" {
		usage = append(usage, cmd.Usage)
	}
	fmt.Fprintf(w, "\nUsage:\n  %s\n", strings.Join(usage, " "))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(cmd.children) > 0 {
		fmt.Fprintln(tw, "\nCommands:")
		for _, child := range cmd.children {
			fmt.Fprintf(tw, "  %s\t%s\n", child.Name, child.Short)
		}
	}
	if len(flags) > 0 {
		fmt.Fprintln(tw, "\nFlags:")
		for _, f := range flags {
			names := "    --" + f.name
			if f.shorthand != 0 {
				names = fmt.Sprintf("-%c, --%s", f.shorthand, f.name)
			}
			if t := f.value.typeName(); t != "" {
				names += " <" + t + ">"
			}
			fmt.Fprintf(tw, "  %s\t%s\n", names, f.usage)
		}
	}
	tw.Flush()
}
