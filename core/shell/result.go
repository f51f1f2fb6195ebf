// Package shell implements the command execution engine: tokenizing a raw
// line, expanding aliases, dispatching built-in verbs and falling back to the
// host shell, all against an explicit per-session state object.
package shell

// Exit codes reported through CommandResult beyond a command's own status.
const (
	// ExitTimeout is reported when a fallback command exceeds its deadline.
	ExitTimeout = 124
	// ExitNotFound is reported when the fallback command cannot be launched.
	ExitNotFound = 127
)

// ClearScreen is the sentinel output of the clear/cls builtins. The engine
// never clears anything itself; callers that render output are expected to
// intercept this value and reset their terminal.
const ClearScreen = "CLEAR_SCREEN"

// CommandResult is the universal return contract of Engine.Execute. Error is
// non-empty only when ExitCode is nonzero; the converse doesn't hold because
// commands may signal status purely through the exit code like OS commands
// do.
type CommandResult struct {
	Output   string `json:"output"`
	Error    string `json:"error"`
	ExitCode int    `json:"exit_code"`
}

// Success reports whether the command exited cleanly.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
