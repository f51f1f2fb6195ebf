package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/websh-dev/websh/core/shell"
)

// Cat concatenates file contents. Trailing whitespace of each file is
// dropped so multiple files join cleanly with single newlines. The first
// unreadable file aborts the run.
func Cat(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "cat: missing operand")
		return 1
	}

	var chunks []string
	for _, name := range args {
		content, err := readFileString(p, name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "cat: %s: %s\n", name, strerror(err))
			return 1
		}
		chunks = append(chunks, strings.TrimRightFunc(content, unicode.IsSpace))
	}
	fmt.Fprintln(p.Stdout(), strings.Join(chunks, "\n"))
	return 0
}

var _ shell.ProcessFunc = Cat

func init() {
	Register(&Command{
		Names: []string{"cat", "type"},
		Use:   "cat <file>...",
		Short: "Display file contents",
		Group: GroupFiles,
		Run:   Cat,
	})
}
