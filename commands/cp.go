package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Cp copies files, and with -r whole directory trees. A single source
// copies onto the destination, nesting under it when the destination is
// an existing directory. Multiple sources require a directory destination;
// sources that are neither regular files nor (with -r) directories are
// skipped.
func Cp(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) < 2 {
		fmt.Fprintln(p.Stderr(), "cp: missing operand")
		return 1
	}

	opts := newOpts()
	recursive := opts.Bool('r')
	opts.Parse(args)

	files := opts.Args()
	if len(files) < 2 {
		fmt.Fprintln(p.Stderr(), "cp: missing operand")
		return 1
	}

	sources := files[:len(files)-1]
	destName := files[len(files)-1]
	destPath := p.Resolve(destName)
	fs := p.FS()

	if len(sources) == 1 {
		srcName := sources[0]
		srcPath := p.Resolve(srcName)

		if info, err := fs.Stat(srcPath); err == nil && info.IsDir() {
			if !*recursive {
				fmt.Fprintf(p.Stderr(), "cp: -r not specified; omitting directory '%s'\n", srcName)
				return 1
			}
			if _, err := fs.Stat(destPath); err == nil {
				destPath = filepath.Join(destPath, filepath.Base(srcPath))
			}
			if err := copyTree(fs, srcPath, destPath); err != nil {
				fmt.Fprintf(p.Stderr(), "cp: %v\n", err)
				return 1
			}
			return 0
		}

		if info, err := fs.Stat(destPath); err == nil && info.IsDir() {
			destPath = filepath.Join(destPath, filepath.Base(srcPath))
		}
		if err := copyFile(fs, srcPath, destPath); err != nil {
			fmt.Fprintf(p.Stderr(), "cp: %v\n", err)
			return 1
		}
		return 0
	}

	if info, err := fs.Stat(destPath); err != nil || !info.IsDir() {
		fmt.Fprintf(p.Stderr(), "cp: target '%s' is not a directory\n", destName)
		return 1
	}

	for _, srcName := range sources {
		srcPath := p.Resolve(srcName)
		info, err := fs.Stat(srcPath)
		if err != nil {
			continue
		}
		target := filepath.Join(destPath, filepath.Base(srcPath))
		switch {
		case info.IsDir() && *recursive:
			err = copyTree(fs, srcPath, target)
		case info.Mode().IsRegular():
			err = copyFile(fs, srcPath, target)
		default:
			continue
		}
		if err != nil {
			fmt.Fprintf(p.Stderr(), "cp: %v\n", err)
			return 1
		}
	}
	return 0
}

// copyFile copies one regular file, carrying over the source modification
// time.
func copyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat '%s': %s", src, strerror(err))
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("cannot read '%s': %s", src, strerror(err))
	}
	if err := afero.WriteFile(fs, dst, data, 0644); err != nil {
		return fmt.Errorf("cannot create '%s': %s", dst, strerror(err))
	}
	mtime := info.ModTime()
	fs.Chtimes(dst, mtime, mtime)
	return nil
}

// copyTree copies a directory recursively. The destination must not exist
// yet.
func copyTree(fs afero.Fs, src, dst string) error {
	if _, err := fs.Stat(dst); err == nil {
		return fmt.Errorf("cannot create directory '%s': File exists", dst)
	}
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			if err := fs.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("cannot create directory '%s': %s", target, strerror(err))
			}
			return nil
		}
		return copyFile(fs, path, target)
	})
}

var _ shell.ProcessFunc = Cp

func init() {
	Register(&Command{
		Names: []string{"cp", "copy"},
		Use:   "cp [-r] <src>... <dst>",
		Short: "Copy files or directories",
		Group: GroupFiles,
		Run:   Cp,
	})
}
