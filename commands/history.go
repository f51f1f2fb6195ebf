package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// History prints the most recent commands, numbered from 1 within the
// displayed window.
func History(p *shell.Proc) int {
	for i, entry := range p.History().Tail(p.HistoryWindow()) {
		fmt.Fprintf(p.Stdout(), "%4d  %s\n", i+1, entry.Command)
	}
	return 0
}

var _ shell.ProcessFunc = History

func init() {
	Register(&Command{
		Names: []string{"history"},
		Use:   "history",
		Short: "Show command history",
		Group: GroupShell,
		Run:   History,
	})
}
