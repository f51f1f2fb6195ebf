package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Mkdir creates directories. -p creates missing parents and tolerates
// directories that already exist. Failures are reported per operand and
// the remaining operands are still attempted.
func Mkdir(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "mkdir: missing operand")
		return 1
	}

	opts := newOpts()
	parents := opts.Bool('p')
	opts.Parse(args)

	exitCode := 0
	for _, name := range opts.Args() {
		path := p.Resolve(name)
		var err error
		if *parents {
			err = p.FS().MkdirAll(path, 0755)
		} else {
			err = p.FS().Mkdir(path, 0755)
		}
		if err != nil {
			fmt.Fprintf(p.Stderr(), "mkdir: cannot create directory '%s': %s\n", name, strerror(err))
			exitCode = 1
		}
	}
	return exitCode
}

var _ shell.ProcessFunc = Mkdir

func init() {
	Register(&Command{
		Names: []string{"mkdir"},
		Use:   "mkdir [-p] <dir>...",
		Short: "Create directories",
		Group: GroupFiles,
		Run:   Mkdir,
	})
}
