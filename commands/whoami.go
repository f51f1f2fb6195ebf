package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Whoami prints the session username.
func Whoami(p *shell.Proc) int {
	fmt.Fprintln(p.Stdout(), p.User())
	return 0
}

var _ shell.ProcessFunc = Whoami

func init() {
	Register(&Command{
		Names: []string{"whoami"},
		Use:   "whoami",
		Short: "Print current user",
		Group: GroupShell,
		Run:   Whoami,
	})
}
