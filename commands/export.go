package commands

import (
	"os"

	"github.com/websh-dev/websh/core/shell"
)

// Export assigns NAME=value pairs into the session environment, or with
// no arguments lists it like env. A bare NAME imports the variable from
// the host environment when the host has it; unknown names are ignored.
func Export(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		return Env(p)
	}

	for _, arg := range args {
		if name, value, ok := cutAssignment(arg); ok {
			p.Setenv(name, value)
		} else if value, ok := os.LookupEnv(arg); ok {
			p.Setenv(arg, value)
		}
	}
	return 0
}

var _ shell.ProcessFunc = Export

func init() {
	Register(&Command{
		Names: []string{"export"},
		Use:   "export [NAME=value]...",
		Short: "Export environment variables",
		Group: GroupEnvironment,
		Run:   Export,
	})
}
