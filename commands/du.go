package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Du sums the file sizes under a directory and reports the total in
// megabytes. Unreadable entries are skipped, and a missing directory
// reports zero rather than an error.
func Du(p *shell.Proc) int {
	target := p.Getwd()
	if args := p.Args()[1:]; len(args) > 0 {
		target = p.Resolve(args[0])
	}

	var total int64
	afero.Walk(p.FS(), target, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		total += info.Size()
		return nil
	})

	fmt.Fprintf(p.Stdout(), "%.1fM\t%s\n", float64(total)/(1<<20), target)
	return 0
}

var _ shell.ProcessFunc = Du

func init() {
	Register(&Command{
		Names: []string{"du"},
		Use:   "du [dir]",
		Short: "Show directory space usage",
		Group: GroupSystem,
		Run:   Du,
	})
}
