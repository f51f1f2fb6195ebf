package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/websh-dev/websh/core/shell"
)

// Grep searches files for lines containing a literal substring. Matches
// print as name:line:text with 1-based line numbers. No matches is still
// a success; an unreadable file aborts the run.
func Grep(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) < 2 {
		fmt.Fprintln(p.Stderr(), "grep: missing operand")
		return 1
	}

	pattern := args[0]
	for _, name := range args[1:] {
		lines, err := readFileLines(p, name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "grep: %s: %s\n", name, strerror(err))
			return 1
		}
		for i, line := range lines {
			if strings.Contains(line, pattern) {
				fmt.Fprintf(p.Stdout(), "%s:%d:%s\n", name, i+1, strings.TrimRightFunc(line, unicode.IsSpace))
			}
		}
	}
	return 0
}

var _ shell.ProcessFunc = Grep

func init() {
	Register(&Command{
		Names: []string{"grep", "findstr"},
		Use:   "grep <pattern> <file>...",
		Short: "Search files for a substring",
		Group: GroupFiles,
		Run:   Grep,
	})
}
