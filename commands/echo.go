package commands

import (
	"fmt"
	"strings"

	"github.com/websh-dev/websh/core/shell"
)

// Echo prints its arguments joined by single spaces.
func Echo(p *shell.Proc) int {
	fmt.Fprintln(p.Stdout(), strings.Join(p.Args()[1:], " "))
	return 0
}

var _ shell.ProcessFunc = Echo

func init() {
	Register(&Command{
		Names: []string{"echo"},
		Use:   "echo [text]...",
		Short: "Print text",
		Group: GroupShell,
		Run:   Echo,
	})
}
