package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Rm removes files. -r removes directories recursively, -f suppresses
// errors for missing operands. Removing a directory without -r is always
// an error, even under -f.
func Rm(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "rm: missing operand")
		return 1
	}

	opts := newOpts()
	recursive := opts.Bool('r')
	force := opts.Bool('f')
	opts.Parse(args)

	exitCode := 0
	for _, name := range opts.Args() {
		path := p.Resolve(name)
		info, err := p.FS().Stat(path)
		if err != nil {
			if !*force {
				fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': %s\n", name, strerror(err))
				exitCode = 1
			}
			continue
		}

		if info.IsDir() {
			if !*recursive {
				fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': Is a directory\n", name)
				exitCode = 1
				continue
			}
			err = p.FS().RemoveAll(path)
		} else {
			err = p.FS().Remove(path)
		}
		if err != nil && !*force {
			fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': %s\n", name, strerror(err))
			exitCode = 1
		}
	}
	return exitCode
}

var _ shell.ProcessFunc = Rm

func init() {
	Register(&Command{
		Names: []string{"rm", "del"},
		Use:   "rm [-r] [-f] <file>...",
		Short: "Remove files or directories",
		Group: GroupFiles,
		Run:   Rm,
	})
}
