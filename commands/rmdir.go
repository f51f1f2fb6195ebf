package commands

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Rmdir removes empty directories. Non-empty or missing directories are
// reported per operand and the rest are still attempted.
func Rmdir(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "rmdir: missing operand")
		return 1
	}

	exitCode := 0
	fail := func(name, reason string) {
		fmt.Fprintf(p.Stderr(), "rmdir: failed to remove '%s': %s\n", name, reason)
		exitCode = 1
	}

	for _, name := range args {
		path := p.Resolve(name)
		info, err := p.FS().Stat(path)
		if err != nil {
			fail(name, strerror(err))
			continue
		}
		if !info.IsDir() {
			fail(name, "Not a directory")
			continue
		}
		entries, err := afero.ReadDir(p.FS(), path)
		if err != nil {
			fail(name, strerror(err))
			continue
		}
		if len(entries) > 0 {
			fail(name, "Directory not empty")
			continue
		}
		if err := p.FS().Remove(path); err != nil {
			fail(name, strerror(err))
		}
	}
	return exitCode
}

var _ shell.ProcessFunc = Rmdir

func init() {
	Register(&Command{
		Names: []string{"rmdir"},
		Use:   "rmdir <dir>...",
		Short: "Remove empty directories",
		Group: GroupFiles,
		Run:   Rmdir,
	})
}
