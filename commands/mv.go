package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Mv moves or renames files and directories. A single source moving into
// an existing directory nests under it; multiple sources require a
// directory destination. The first failure aborts, earlier moves stand.
func Mv(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) < 2 {
		fmt.Fprintln(p.Stderr(), "mv: missing operand")
		return 1
	}

	sources := args[:len(args)-1]
	destName := args[len(args)-1]
	destPath := p.Resolve(destName)
	fs := p.FS()

	if len(sources) == 1 {
		srcPath := p.Resolve(sources[0])
		if info, err := fs.Stat(destPath); err == nil && info.IsDir() {
			destPath = filepath.Join(destPath, filepath.Base(srcPath))
		}
		if err := moveEntry(fs, srcPath, destPath); err != nil {
			fmt.Fprintf(p.Stderr(), "mv: %v\n", err)
			return 1
		}
		return 0
	}

	if info, err := fs.Stat(destPath); err != nil || !info.IsDir() {
		fmt.Fprintf(p.Stderr(), "mv: target '%s' is not a directory\n", destName)
		return 1
	}

	for _, srcName := range sources {
		srcPath := p.Resolve(srcName)
		if err := moveEntry(fs, srcPath, filepath.Join(destPath, filepath.Base(srcPath))); err != nil {
			fmt.Fprintf(p.Stderr(), "mv: %v\n", err)
			return 1
		}
	}
	return 0
}

// moveEntry relocates a file or directory. Directories move by copy and
// delete so the operation works on filesystems whose rename does not carry
// children along.
func moveEntry(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat '%s': %s", src, strerror(err))
	}

	if info.IsDir() {
		if err := copyTree(fs, src, dst); err != nil {
			return err
		}
		return fs.RemoveAll(src)
	}

	if existing, err := fs.Stat(dst); err == nil && !existing.IsDir() {
		if err := fs.Remove(dst); err != nil {
			return fmt.Errorf("cannot remove '%s': %s", dst, strerror(err))
		}
	}
	if err := fs.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(fs, src, dst); err != nil {
		return err
	}
	return fs.Remove(src)
}

var _ shell.ProcessFunc = Mv

func init() {
	Register(&Command{
		Names: []string{"mv", "move"},
		Use:   "mv <src>... <dst>",
		Short: "Move or rename files",
		Group: GroupFiles,
		Run:   Mv,
	})
}
