package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Pwd prints the session working directory.
func Pwd(p *shell.Proc) int {
	fmt.Fprintln(p.Stdout(), p.Getwd())
	return 0
}

var _ shell.ProcessFunc = Pwd

func init() {
	Register(&Command{
		Names: []string{"pwd"},
		Use:   "pwd",
		Short: "Print working directory",
		Group: GroupFiles,
		Run:   Pwd,
	})
}
