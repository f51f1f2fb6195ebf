package commands

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Find walks a directory tree and prints every file or directory whose
// base name matches a glob pattern. With one argument the argument is a
// directory if one exists by that name, otherwise a pattern searched from
// the working directory. Unreadable or missing directories yield no
// matches rather than an error.
func Find(p *shell.Proc) int {
	args := p.Args()[1:]

	searchDir := p.Getwd()
	pattern := "*"
	switch {
	case len(args) >= 2:
		searchDir = p.Resolve(args[0])
		pattern = args[1]
	case len(args) == 1:
		if ok, err := afero.DirExists(p.FS(), p.Resolve(args[0])); err == nil && ok {
			searchDir = p.Resolve(args[0])
		} else {
			pattern = args[0]
		}
	}

	afero.Walk(p.FS(), searchDir, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil || walkPath == searchDir {
			return nil
		}
		if ok, _ := path.Match(pattern, filepath.Base(walkPath)); ok {
			fmt.Fprintln(p.Stdout(), walkPath)
		}
		return nil
	})
	return 0
}

var _ shell.ProcessFunc = Find

func init() {
	Register(&Command{
		Names: []string{"find"},
		Use:   "find [dir] [pattern]",
		Short: "Find files by name pattern",
		Group: GroupFiles,
		Run:   Find,
	})
}
