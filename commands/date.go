package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Date prints the current time in the classic date(1) layout.
func Date(p *shell.Proc) int {
	fmt.Fprintln(p.Stdout(), p.Now().Format("Mon Jan 02 15:04:05 MST 2006"))
	return 0
}

var _ shell.ProcessFunc = Date

func init() {
	Register(&Command{
		Names: []string{"date"},
		Use:   "date",
		Short: "Print current date and time",
		Group: GroupShell,
		Run:   Date,
	})
}
