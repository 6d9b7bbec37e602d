package cli

// RunFunc handles a selected command.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. Return a UsageError for mistakes the user should see usage for.
type ArgsFunc func(args []string) error

// Command is one node of a command tree.
type Command struct {
	Name    string   // token that selects the command, e.g. "diff"
	Aliases []string // other tokens that select it

	Short string // one-line summary shown in the parent's command list
	Long  string // optional paragraph shown in the command's own help
	Usage string // positional args placeholder for the usage line, e.g. "OLD NEW"

	Args ArgsFunc // nil accepts anything
	Run  RunFunc  // nil means the command only groups subcommands

	parent     *Command
	children   []*Command
	flags      *FlagSet
	persistent *FlagSet
}

// AddCommand attaches children to c. It panics on a nil, unnamed, or already attached child, or on a name that is already taken.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		switch {
		case child == nil:
			panic("cli: AddCommand: nil child")
		case child.Name == "":
			panic("cli: AddCommand: child has no Name")
		case child.parent != nil:
			panic("cli: AddCommand: " + child.Name + " already has a parent")
		case c.lookup(child.Name) != nil:
			panic("cli: AddCommand: duplicate command " + child.Name)
		}
		child.parent = c
		c.children = append(c.children, child)
	}
}

// Commands returns a copy of c's direct children, in the order they were added.
func (c *Command) Commands() []*Command {
	return append([]*Command(nil), c.children...)
}

// Flags returns the flags that only c accepts.
func (c *Command) Flags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}

// PersistentFlags returns the flags accepted by c and every descendant.
func (c *Command) PersistentFlags() *FlagSet {
	if c.persistent == nil {
		c.persistent = newFlagSet()
	}
	return c.persistent
}

func (c *Command) lookup(token string) *Command {
	for _, child := range c.children {
		if child.Name == token {
			return child
		}
		for _, a := range child.Aliases {
			if a == token {
				return child
			}
		}
	}
	return nil
}

// lineage returns the commands from the root down to c.
func (c *Command) lineage() []*Command {
	n := 0
	for cur := c; cur != nil; cur = cur.parent {
		n++
	}
	out := make([]*Command, n)
	for cur := c; cur != nil; cur = cur.parent {
		n--
		out[n] = cur
	}
	return out
}
