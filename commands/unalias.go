package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Unalias removes aliases by name. An unknown name stops the run; aliases
// removed before it stay removed.
func Unalias(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "unalias: missing operand")
		return 1
	}

	for _, name := range args {
		if err := p.Aliases().Unset(name); err != nil {
			fmt.Fprintf(p.Stderr(), "unalias: %s: not found\n", name)
			return 1
		}
	}
	return 0
}

var _ shell.ProcessFunc = Unalias

func init() {
	Register(&Command{
		Names: []string{"unalias"},
		Use:   "unalias <name>...",
		Short: "Remove command aliases",
		Group: GroupEnvironment,
		Run:   Unalias,
	})
}
