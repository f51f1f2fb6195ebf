package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/sysinfo"
)

// Kill terminates the process named by the first operand.
func Kill(p *shell.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "kill: missing operand")
		return 1
	}

	pid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(p.Stderr(), "kill: invalid PID '%s'\n", args[0])
		return 1
	}

	switch err := p.SysInfo().Terminate(int32(pid)); {
	case errors.Is(err, sysinfo.ErrNoSuchProcess):
		fmt.Fprintf(p.Stderr(), "kill: no such process: %s\n", args[0])
		return 1
	case errors.Is(err, sysinfo.ErrPermissionDenied):
		fmt.Fprintf(p.Stderr(), "kill: permission denied: %s\n", args[0])
		return 1
	case err != nil:
		fmt.Fprintf(p.Stderr(), "kill: %v\n", err)
		return 1
	}

	fmt.Fprintf(p.Stdout(), "Process %d terminated\n", pid)
	return 0
}

var _ shell.ProcessFunc = Kill

func init() {
	Register(&Command{
		Names: []string{"kill"},
		Use:   "kill <pid>",
		Short: "Terminate a process",
		Group: GroupSystem,
		Run:   Kill,
	})
}
