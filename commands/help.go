package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Help prints every registered command with its usage line, grouped by
// category.
func Help(p *shell.Proc) int {
	w := p.Stdout()
	fmt.Fprintln(w, "Available commands:")

	for _, group := range Groups {
		var lines []string
		for _, cmd := range Catalog() {
			if cmd.Group == group {
				lines = append(lines, fmt.Sprintf("  %-24s %s", cmd.Use, cmd.Short))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", group)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Type 'exit' or 'quit' to leave the shell.")
	return 0
}

var _ shell.ProcessFunc = Help

func init() {
	Register(&Command{
		Names: []string{"help"},
		Use:   "help",
		Short: "Show this help message",
		Group: GroupShell,
		Run:   Help,
	})
}
