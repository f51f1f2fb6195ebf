package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// treeMaxDepth bounds recursion so huge trees stay readable.
const treeMaxDepth = 3

// Tree draws a directory tree with box-drawing connectors, three levels
// deep, skipping dotfiles.
func Tree(p *shell.Proc) int {
	target := p.Getwd()
	if args := p.Args()[1:]; len(args) > 0 {
		target = p.Resolve(args[0])
	}

	if ok, err := afero.DirExists(p.FS(), target); err != nil || !ok {
		fmt.Fprintf(p.Stderr(), "tree: %s: No such directory\n", target)
		return 1
	}

	fmt.Fprintln(p.Stdout(), target)
	treeWalk(p, target, "", 0)
	return 0
}

func treeWalk(p *shell.Proc, dir, prefix string, depth int) {
	if depth >= treeMaxDepth {
		return
	}

	entries, err := afero.ReadDir(p.FS(), dir)
	if err != nil {
		fmt.Fprintln(p.Stdout(), prefix+"├── [Permission Denied]")
		return
	}

	var visible []string
	isDir := make(map[string]bool)
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		visible = append(visible, entry.Name())
		isDir[entry.Name()] = entry.IsDir()
	}

	for i, name := range visible {
		connector, extension := "├── ", "│   "
		if i == len(visible)-1 {
			connector, extension = "└── ", "    "
		}
		fmt.Fprintln(p.Stdout(), prefix+connector+name)
		if isDir[name] {
			treeWalk(p, filepath.Join(dir, name), prefix+extension, depth+1)
		}
	}
}

var _ shell.ProcessFunc = Tree

func init() {
	Register(&Command{
		Names: []string{"tree"},
		Use:   "tree [dir]",
		Short: "Display directory tree",
		Group: GroupFiles,
		Run:   Tree,
	})
}
