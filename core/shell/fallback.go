package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"time"
)

// DefaultFallbackTimeout bounds how long a host command may run before it
// is killed and reported as timed out.
const DefaultFallbackTimeout = 30 * time.Second

// DefaultShell returns the host command processor invocation prefix for
// this platform.
func DefaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"/bin/sh", "-c"}
}

// ExecRunner runs unrecognized command lines through the host shell. The
// subprocess inherits the session working directory and receives the
// environment overlay as its complete environment; its streams and exit
// code pass through verbatim.
type ExecRunner struct {
	Timeout time.Duration
	// Shell is the argv prefix the command line is appended to, e.g.
	// ["/bin/sh", "-c"]. Empty means DefaultShell().
	Shell []string
}

var _ CommandRunner = (*ExecRunner)(nil)

// NewExecRunner builds an ExecRunner; zero timeout means
// DefaultFallbackTimeout and nil shell means DefaultShell().
func NewExecRunner(timeout time.Duration, shell []string) *ExecRunner {
	return &ExecRunner{Timeout: timeout, Shell: shell}
}

// Run executes line and maps the outcome onto the result contract: 124 on
// timeout, 127 when the command processor can't be launched, the
// subprocess's own exit code otherwise.
func (r *ExecRunner) Run(line, dir string, environ []string) CommandResult {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultFallbackTimeout
	}
	shell := r.Shell
	if len(shell) == 0 {
		shell = DefaultShell()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	argv := make([]string, 0, len(shell)+1)
	argv = append(argv, shell...)
	argv = append(argv, line)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = environ

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return CommandResult{Error: "Command timed out", ExitCode: ExitTimeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return CommandResult{
				Output:   stdout.String(),
				Error:    stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return CommandResult{
			Error:    "Command not found: " + err.Error(),
			ExitCode: ExitNotFound,
		}
	}
	return CommandResult{Output: stdout.String(), Error: stderr.String()}
}
