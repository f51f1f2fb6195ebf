package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/websh-dev/websh/core/shell"
)

// Tail prints the last lines of each file, 10 by default. The count
// comes from -n N or the fused form -N.
func Tail(p *shell.Proc) int {
	opts := newOpts()
	count := opts.Count(10)
	opts.Parse(p.Args()[1:])
	if err := opts.Err(); err != nil {
		fmt.Fprintf(p.Stderr(), "tail: %v\n", err)
		return 1
	}

	files := opts.Args()
	if len(files) == 0 {
		fmt.Fprintln(p.Stderr(), "tail: missing operand")
		return 1
	}

	n := *count
	if n < 0 {
		n = 0
	}

	var out strings.Builder
	for _, name := range files {
		lines, err := readFileLines(p, name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "tail: %s: %s\n", name, strerror(err))
			return 1
		}
		if n < len(lines) {
			lines = lines[len(lines)-n:]
		}
		out.WriteString(strings.Join(lines, ""))
	}
	fmt.Fprintln(p.Stdout(), strings.TrimRightFunc(out.String(), unicode.IsSpace))
	return 0
}

var _ shell.ProcessFunc = Tail

func init() {
	Register(&Command{
		Names: []string{"tail"},
		Use:   "tail [-n N] <file>...",
		Short: "Show last lines of files",
		Group: GroupFiles,
		Run:   Tail,
	})
}
