package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Env prints the session environment as KEY=value lines sorted by key.
func Env(p *shell.Proc) int {
	for _, kv := range p.Environ() {
		fmt.Fprintln(p.Stdout(), kv)
	}
	return 0
}

var _ shell.ProcessFunc = Env

func init() {
	Register(&Command{
		Names: []string{"env"},
		Use:   "env",
		Short: "Print environment variables",
		Group: GroupEnvironment,
		Run:   Env,
	})
}
