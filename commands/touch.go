package commands

import (
	"fmt"
	"os"

	"github.com/websh-dev/websh/core/shell"
)

// Touch creates files, or refreshes the modification time of files that
// already exist. The first failure aborts; files touched before it stay
// touched.
func Touch(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "touch: missing operand")
		return 1
	}

	for _, name := range args {
		path := p.Resolve(name)
		now := p.Now()
		if err := p.FS().Chtimes(path, now, now); err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(p.Stderr(), "touch: cannot touch '%s': %s\n", name, strerror(err))
				return 1
			}
			fd, err := p.FS().Create(path)
			if err != nil {
				fmt.Fprintf(p.Stderr(), "touch: cannot touch '%s': %s\n", name, strerror(err))
				return 1
			}
			fd.Close()
		}
	}
	return 0
}

var _ shell.ProcessFunc = Touch

func init() {
	Register(&Command{
		Names: []string{"touch"},
		Use:   "touch <file>...",
		Short: "Create files or update timestamps",
		Group: GroupFiles,
		Run:   Touch,
	})
}
