package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Clear asks the hosting frontend to clear its display by emitting the
// shell.ClearScreen sentinel as output.
func Clear(p *shell.Proc) int {
	fmt.Fprintln(p.Stdout(), shell.ClearScreen)
	return 0
}

var _ shell.ProcessFunc = Clear

func init() {
	Register(&Command{
		Names: []string{"clear", "cls"},
		Use:   "clear",
		Short: "Clear the screen",
		Group: GroupShell,
		Run:   Clear,
	})
}
