package cli

import (
	"fmt"
	"sort"
	"strconv"
)

// FlagSet holds the typed flags of one command.
type FlagSet struct {
	long  map[string]*flag
	short map[rune]*flag
}

type flag struct {
	name      string
	shorthand rune
	usage     string
	value     flagValue
	changed   bool
}

type flagValue interface {
	set(raw string) error
	typeName() string // "" for flags that take no value
}

type boolValue struct{ p *bool }

func (v boolValue) set(raw string) error {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%q is not a boolean", raw)
	}
	*v.p = b
	return nil
}

func (boolValue) typeName() string { return "" }

type stringValue struct{ p *string }

func (v stringValue) set(raw string) error {
	*v.p = raw
	return nil
}

func (stringValue) typeName() string { return "string" }

type intValue struct{ p *int }

func (v intValue) set(raw string) error {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%q is not an integer", raw)
	}
	*v.p = n
	return nil
}

func (intValue) typeName() string { return "int" }

// sliceValue drops its default on the first explicit value, so defaults are replaced rather than extended.
type sliceValue struct {
	p       *[]string
	touched bool
}

func (v *sliceValue) set(raw string) error {
	if !v.touched {
		*v.p = nil
		v.touched = true
	}
	*v.p = append(*v.p, raw)
	return nil
}

func (*sliceValue) typeName() string { return "string" }

func newFlagSet() *FlagSet {
	return &FlagSet{long: map[string]*flag{}, short: map[rune]*flag{}}
}

// Bool defines a flag that is set to true by its presence, or to an explicit value with --name=false. A shorthand of 0 means none.
func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	p := &def
	fs.define(name, shorthand, usage, boolValue{p})
	return p
}

// String defines a flag taking one string value.
func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	p := &def
	fs.define(name, shorthand, usage, stringValue{p})
	return p
}

// Int defines a flag taking one integer value.
func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	p := &def
	fs.define(name, shorthand, usage, intValue{p})
	return p
}

// StringSlice defines a repeatable flag; each occurrence appends one value.
func (fs *FlagSet) StringSlice(name string, shorthand rune, def []string, usage string) *[]string {
	p := new([]string)
	*p = append(*p, def...)
	fs.define(name, shorthand, usage, &sliceValue{p: p})
	return p
}

// Changed reports whether the flag called name was given on the command line.
func (fs *FlagSet) Changed(name string) bool {
	f, ok := fs.long[name]
	return ok && f.changed
}

func (fs *FlagSet) define(name string, shorthand rune, usage string, v flagValue) {
	if name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, dup := fs.long[name]; dup {
		panic("cli: duplicate flag --" + name)
	}
	f := &flag{name: name, shorthand: shorthand, usage: usage, value: v}
	fs.long[name] = f
	if shorthand != 0 {
		if _, dup := fs.short[shorthand]; dup {
			panic(fmt.Sprintf("cli: duplicate shorthand -%c", shorthand))
		}
		fs.short[shorthand] = f
	}
}

// flagsFor merges the persistent flags of c's ancestors with c's own flags. It panics when two of them collide.
func flagsFor(c *Command) *FlagSet {
	merged := newFlagSet()
	add := func(fs *FlagSet) {
		if fs == nil {
			return
		}
		for _, f := range fs.long {
			if prev, ok := merged.long[f.name]; ok && prev != f {
				panic("cli: flag --" + f.name + " defined twice on the command path")
			}
			merged.long[f.name] = f
			if f.shorthand != 0 {
				if prev, ok := merged.short[f.shorthand]; ok && prev != f {
					panic(fmt.Sprintf("cli: shorthand -%c defined twice on the command path", f.shorthand))
				}
				merged.short[f.shorthand] = f
			}
		}
	}
	for _, cmd := range c.lineage() {
		add(cmd.persistent)
	}
	add(c.flags)
	return merged
}

// sorted returns the flags ordered by long name.
func (fs *FlagSet) sorted() []*flag {
	out := make([]*flag, 0, len(fs.long))
	for _, f := range fs.long {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (f *flag) display() string {
	if f.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", f.shorthand, f.name)
	}
	return "--" + f.name
}
