package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Cd changes the session working directory. With no argument (or "-") it
// returns home; a leading ~ expands to the home directory.
func Cd(p *shell.Proc) int {
	args := p.Args()[1:]

	var target string
	switch {
	case len(args) == 0, args[0] == "-":
		target = p.ExpandUser("~")
	default:
		target = p.ExpandUser(args[0])
	}

	if err := p.Chdir(target); err != nil {
		fmt.Fprintf(p.Stderr(), "cd: %v\n", err)
		return 1
	}
	return 0
}

var _ shell.ProcessFunc = Cd

func init() {
	Register(&Command{
		Names: []string{"cd"},
		Use:   "cd <dir>",
		Short: "Change directory",
		Group: GroupFiles,
		Run:   Cd,
	})
}
