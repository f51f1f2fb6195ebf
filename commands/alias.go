package commands

import (
	"fmt"
	"strings"

	"github.com/websh-dev/websh/core/shell"
)

// Alias defines aliases from name=command arguments, or with no arguments
// lists existing aliases in definition order. Surrounding quotes on the
// command text are stripped. A malformed argument stops the run; aliases
// defined before it stick.
func Alias(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		for _, a := range p.Aliases().List() {
			fmt.Fprintf(p.Stdout(), "alias %s='%s'\n", a.Name, a.Text)
		}
		return 0
	}

	for _, arg := range args {
		name, text, ok := cutAssignment(arg)
		if !ok {
			fmt.Fprintf(p.Stderr(), "alias: invalid format '%s'\n", arg)
			return 1
		}
		p.Aliases().Set(name, strings.Trim(text, `'"`))
	}
	return 0
}

var _ shell.ProcessFunc = Alias

func init() {
	Register(&Command{
		Names: []string{"alias"},
		Use:   "alias [name=command]...",
		Short: "Define command aliases",
		Group: GroupEnvironment,
		Run:   Alias,
	})
}
