// Package commands implements the built-in verbs of the shell engine. Each
// verb lives in its own file and registers itself at init time; the engine
// dispatches through the package registry.
package commands

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
)

// Group labels a command for the help catalog.
type Group string

// Help catalog sections, rendered in this order.
const (
	GroupFiles       Group = "File Operations"
	GroupSystem      Group = "System Monitoring"
	GroupEnvironment Group = "Aliases and Variables"
	GroupShell       Group = "Shell Builtins"
)

// Groups lists the catalog sections in display order.
var Groups = []Group{GroupFiles, GroupSystem, GroupEnvironment, GroupShell}

// Command describes one registered builtin.
type Command struct {
	// Names holds the canonical name first, then any synonyms (the
	// Windows spellings like dir or findstr).
	Names []string
	// Use is the one-line invocation summary shown by help.
	Use string
	// Short is the one-line description shown by help.
	Short string
	// Group picks the help section.
	Group Group
	// Run is the handler.
	Run shell.ProcessFunc
}

// Name returns the canonical name.
func (c *Command) Name() string { return c.Names[0] }

var (
	commandList  []*Command
	commandIndex = make(map[string]*Command)
)

// Register adds cmd to the dispatch table. It panics on duplicate or
// incomplete registrations so a bad table fails at startup rather than at
// dispatch time.
func Register(cmd *Command) {
	if len(cmd.Names) == 0 || cmd.Run == nil {
		panic("commands: incomplete command registration")
	}
	for _, name := range cmd.Names {
		if _, exists := commandIndex[name]; exists {
			panic("commands: duplicate command name " + name)
		}
		commandIndex[name] = cmd
	}
	commandList = append(commandList, cmd)
}

// Lookup resolves a verb name to its handler. Matching is exact; the
// engine lowercases dispatch verbs first.
func Lookup(name string) (shell.ProcessFunc, bool) {
	cmd, ok := commandIndex[name]
	if !ok {
		return nil, false
	}
	return cmd.Run, true
}

// IsBuiltin reports whether name is a registered verb or synonym.
func IsBuiltin(name string) bool {
	_, ok := commandIndex[name]
	return ok
}

// Names returns every registered name and synonym, sorted.
func Names() []string {
	out := make([]string, 0, len(commandIndex))
	for name := range commandIndex {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Catalog returns all commands sorted by canonical name.
func Catalog() []*Command {
	out := make([]*Command, len(commandList))
	copy(out, commandList)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

type registry struct{}

func (registry) Lookup(name string) (shell.ProcessFunc, bool) { return Lookup(name) }
func (registry) Names() []string                              { return Names() }

// Registry adapts the package dispatch table to the engine's interface.
func Registry() shell.Registry {
	return registry{}
}

// strerror renders filesystem errors the way shells print them.
func strerror(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, os.ErrExist):
		return "File exists"
	case errors.Is(err, os.ErrPermission):
		return "Permission denied"
	}
	return err.Error()
}

// readFileString reads the file at the session-relative name.
func readFileString(p *shell.Proc, name string) (string, error) {
	data, err := afero.ReadFile(p.FS(), p.Resolve(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readFileLines reads a file split into lines that keep their trailing
// newline: "a\nb\n" is two lines, and so is "a\nb".
func readFileLines(p *shell.Proc, name string) ([]string, error) {
	content, err := readFileString(p, name)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
