package commands

import (
	"fmt"
	"strings"

	"github.com/websh-dev/websh/core/shell"
)

// Set assigns one NAME=value pair into the session environment, or with
// no arguments lists it like env. Only the first argument is considered.
func Set(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		return Env(p)
	}

	name, value, ok := cutAssignment(args[0])
	if !ok {
		fmt.Fprintln(p.Stderr(), "set: invalid format")
		return 1
	}
	p.Setenv(name, value)
	return 0
}

// cutAssignment splits NAME=value at the first equals sign.
func cutAssignment(arg string) (name, value string, ok bool) {
	i := strings.Index(arg, "=")
	if i < 0 {
		return "", "", false
	}
	return arg[:i], arg[i+1:], true
}

var _ shell.ProcessFunc = Set

func init() {
	Register(&Command{
		Names: []string{"set"},
		Use:   "set [NAME=value]",
		Short: "Set an environment variable",
		Group: GroupEnvironment,
		Run:   Set,
	})
}
