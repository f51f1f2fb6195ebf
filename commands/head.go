package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/websh-dev/websh/core/shell"
)

// Head prints the first lines of each file, 10 by default. The count
// comes from -n N or the fused form -N. Output from multiple files is
// concatenated with no separating headers.
func Head(p *shell.Proc) int {
	opts := newOpts()
	count := opts.Count(10)
	opts.Parse(p.Args()[1:])
	if err := opts.Err(); err != nil {
		fmt.Fprintf(p.Stderr(), "head: %v\n", err)
		return 1
	}

	files := opts.Args()
	if len(files) == 0 {
		fmt.Fprintln(p.Stderr(), "head: missing operand")
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
			fmt.Fprintf(p.Stderr(), "head: %s: %s\n", name, strerror(err))
			return 1
		}
		if n < len(lines) {
			lines = lines[:n]
		}
		out.WriteString(strings.Join(lines, ""))
	}
	fmt.Fprintln(p.Stdout(), strings.TrimRightFunc(out.String(), unicode.IsSpace))
	return 0
}

var _ shell.ProcessFunc = Head

func init() {
	Register(&Command{
		Names: []string{"head"},
		Use:   "head [-n N] <file>...",
		Short: "Show first lines of files",
		Group: GroupFiles,
		Run:   Head,
	})
}
