package commands

import (
	"fmt"
	"os/exec"

	"github.com/websh-dev/websh/core/shell"
)

// Which reports how the first operand would resolve: as a shell builtin,
// an alias, or an executable on the host PATH.
func Which(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "which: missing operand")
		return 1
	}

	name := args[0]
	if IsBuiltin(name) {
		fmt.Fprintf(p.Stdout(), "%s: shell builtin\n", name)
		return 0
	}
	if alias, ok := p.Aliases().Get(name); ok {
		fmt.Fprintf(p.Stdout(), "%s: aliased to '%s'\n", name, alias)
		return 0
	}
	if path, err := exec.LookPath(name); err == nil {
		fmt.Fprintln(p.Stdout(), path)
		return 0
	}

	fmt.Fprintf(p.Stderr(), "which: %s: not found\n", name)
	return 1
}

var _ shell.ProcessFunc = Which

func init() {
	Register(&Command{
		Names: []string{"which", "where"},
		Use:   "which <command>",
		Short: "Locate a command",
		Group: GroupEnvironment,
		Run:   Which,
	})
}
