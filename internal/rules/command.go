package rules

import "strings"

// Command is a structured command template: a program name plus its ordered
// argument list. Ninja placeholders ($in, $out, @$out.rsp) and shell
// redirections appear as plain tokens; substitution is ninja's job, never
// this package's.
type Command struct {
	Program string
	Args    []string
}

// String renders the command as the single shell line ninja will execute.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}
