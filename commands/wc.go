package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/websh-dev/websh/core/shell"
)

// Wc prints newline, word and character counts for each file. Lines are
// counted by newline so an unterminated final line does not count.
func Wc(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "wc: missing operand")
		return 1
	}

	for _, name := range args {
		content, err := readFileString(p, name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "wc: %s: %s\n", name, strerror(err))
			return 1
		}
		lines := strings.Count(content, "\n")
		words := len(strings.Fields(content))
		chars := utf8.RuneCountInString(content)
		fmt.Fprintf(p.Stdout(), "%8d %8d %8d %s\n", lines, words, chars, name)
	}
	return 0
}

var _ shell.ProcessFunc = Wc

func init() {
	Register(&Command{
		Names: []string{"wc"},
		Use:   "wc <file>...",
		Short: "Count lines, words and characters",
		Group: GroupFiles,
		Run:   Wc,
	})
}
