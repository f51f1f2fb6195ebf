package shell

import (
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Suggest returns completion candidates for a partially typed command,
// sorted ascending with duplicates removed. Builtin and alias names match
// case-insensitively. Directory entries of the working directory are only
// offered while the input doesn't already start with a builtin name, and
// they match case-sensitively.
func (e *Engine) Suggest(partial string) []string {
	lower := strings.ToLower(partial)
	names := e.registry.Names()

	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, name := range names {
		if strings.HasPrefix(name, lower) {
			add(name)
		}
	}
	for _, alias := range e.session.Aliases().List() {
		if strings.HasPrefix(alias.Name, lower) {
			add(alias.Name)
		}
	}

	if partial != "" && !startsWithAny(partial, names) {
		if entries, err := afero.ReadDir(e.session.FS(), e.session.Cwd()); err == nil {
			for _, entry := range entries {
				if strings.HasPrefix(entry.Name(), partial) {
					add(entry.Name())
				}
			}
		}
	}

	sort.Strings(out)
	return out
}

func startsWithAny(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
