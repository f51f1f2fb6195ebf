package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/websh-dev/websh/core/shell"
)

// lsTimeFormat renders modification times the way coreutils does for
// recent files.
const lsTimeFormat = "Jan 02 15:04"

// Ls lists directory contents. -a includes dotfiles, -l switches to the
// long listing format. Directories report a nominal size of 4096.
func Ls(p *shell.Proc) int {
	opts := newOpts()
	showAll := opts.Bool('a')
	longFormat := opts.Bool('l')
	opts.Parse(p.Args()[1:])

	target := p.Getwd()
	if args := opts.Args(); len(args) > 0 {
		target = p.Resolve(args[0])
	}

	info, err := p.FS().Stat(target)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "ls: cannot access '%s': %s\n", target, strerror(err))
		return 1
	}

	if !info.IsDir() {
		if *longFormat {
			mtime := info.ModTime().Format(lsTimeFormat)
			fmt.Fprintf(p.Stdout(), "-rw-r--r-- 1 user user %8d %s %s\n", info.Size(), mtime, filepath.Base(target))
		} else {
			fmt.Fprintln(p.Stdout(), filepath.Base(target))
		}
		return 0
	}

	dir, err := p.FS().Open(target)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "ls: cannot access '%s': %s\n", target, strerror(err))
		return 1
	}
	names, err := dir.Readdirnames(-1)
	dir.Close()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "ls: cannot access '%s': %s\n", target, strerror(err))
		return 1
	}

	var items []string
	for _, name := range names {
		if !*showAll && strings.HasPrefix(name, ".") {
			continue
		}
		items = append(items, name)
	}
	sort.Strings(items)

	if !*longFormat {
		if len(items) > 0 {
			fmt.Fprintln(p.Stdout(), strings.Join(items, "  "))
		}
		return 0
	}

	for _, item := range items {
		entry, err := p.FS().Stat(filepath.Join(target, item))
		if err != nil {
			fmt.Fprintf(p.Stdout(), "?????????? ? ?    ?        ?            ? %s\n", item)
			continue
		}
		size := entry.Size()
		modeChar, perms := "-", "rw-r--r--"
		if entry.IsDir() {
			size = 4096
			modeChar, perms = "d", "rwxr-xr-x"
		}
		mtime := entry.ModTime().Format(lsTimeFormat)
		fmt.Fprintf(p.Stdout(), "%s%s 1 user user %8d %s %s\n", modeChar, perms, size, mtime, item)
	}
	return 0
}

var _ shell.ProcessFunc = Ls

func init() {
	Register(&Command{
		Names: []string{"ls", "dir"},
		Use:   "ls [-a] [-l] [dir]",
		Short: "List directory contents",
		Group: GroupFiles,
		Run:   Ls,
	})
}
