package shell

import (
	"strconv"
	"strings"
)

// Quote wraps s in single quotes so a POSIX shell reads it back as one word.
// Embedded single quotes close the literal, add an escaped quote and reopen it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Command builds a command line word by word. Values are always quoted and
// empty values are skipped together with their flag.
type Command struct {
	words []string
}

// NewCommand starts a command line with fixed, trusted words
func NewCommand(words ...string) *Command {
	return &Command{words: append([]string(nil), words...)}
}

// Arg appends a quoted positional argument
func (c *Command) Arg(value string) *Command {
	c.words = append(c.words, Quote(value))
	return c
}

// Flag appends "name 'value'" unless value is empty
func (c *Command) Flag(name, value string) *Command {
	if value == "" {
		return c
	}
	c.words = append(c.words, name, Quote(value))
	return c
}

// Flags appends the flag once per value
func (c *Command) Flags(name string, values []string) *Command {
	for _, v := range values {
		c.Flag(name, v)
	}
	return c
}

// Int appends "name n" unless n is zero
func (c *Command) Int(name string, n int) *Command {
	if n == 0 {
		return c
	}
	c.words = append(c.words, name, strconv.Itoa(n))
	return c
}

// Bool appends name when set
func (c *Command) Bool(name string, set bool) *Command {
	if set {
		c.words = append(c.words, name)
	}
	return c
}

func (c *Command) String() string {
	return strings.Join(c.words, " ")
}
