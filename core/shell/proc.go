package shell

import (
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/sysinfo"
)

// ProcessFunc is the uniform shape of a built-in command: consume the
// process context, write to its streams, return an exit code.
type ProcessFunc func(p *Proc) int

// Proc is the execution context handed to a built-in: the session plus
// argv and output streams for this one invocation. Handlers write
// user-facing output to Stdout, error text to Stderr, and signal status via
// their return value.
type Proc struct {
	sess   *Session
	argv   []string
	stdout io.Writer
	stderr io.Writer
}

// NewProc builds a process context for running fn-style builtins against
// sess. argv holds the verb at index 0.
func NewProc(sess *Session, argv []string, stdout, stderr io.Writer) *Proc {
	return &Proc{sess: sess, argv: argv, stdout: stdout, stderr: stderr}
}

// Args returns the full argument vector including the verb at index 0.
func (p *Proc) Args() []string { return p.argv }

// Stdout is the destination for command output.
func (p *Proc) Stdout() io.Writer { return p.stdout }

// Stderr is the destination for error text.
func (p *Proc) Stderr() io.Writer { return p.stderr }

// FS returns the session filesystem.
func (p *Proc) FS() afero.Fs { return p.sess.FS() }

// Getwd returns the session working directory.
func (p *Proc) Getwd() string { return p.sess.Cwd() }

// Chdir changes the session working directory after validating the target.
func (p *Proc) Chdir(dir string) error { return p.sess.Chdir(dir) }

// Resolve makes path absolute and normalized relative to the session
// working directory.
func (p *Proc) Resolve(path string) string { return p.sess.Resolve(path) }

// ExpandUser rewrites a leading ~ to the session home directory.
func (p *Proc) ExpandUser(path string) string { return p.sess.ExpandUser(path) }

// Getenv reads a variable from the session environment overlay.
func (p *Proc) Getenv(key string) string { return p.sess.Env().Getenv(key) }

// Setenv writes a variable to the session environment overlay.
func (p *Proc) Setenv(key, value string) { p.sess.Env().Setenv(key, value) }

// Environ returns the overlay as sorted KEY=VALUE entries.
func (p *Proc) Environ() []string { return p.sess.Env().Environ() }

// Aliases returns the session alias table.
func (p *Proc) Aliases() *Aliases { return p.sess.Aliases() }

// History returns the session history.
func (p *Proc) History() *History { return p.sess.History() }

// HistoryWindow returns how many history entries to display.
func (p *Proc) HistoryWindow() int { return p.sess.HistoryWindow() }

// SysInfo returns the process/system information provider.
func (p *Proc) SysInfo() sysinfo.Provider { return p.sess.SysInfo() }

// Now returns the current session time.
func (p *Proc) Now() time.Time { return p.sess.Now() }

// User returns the session username.
func (p *Proc) User() string { return p.sess.User() }

// Hostname returns the session hostname.
func (p *Proc) Hostname() string { return p.sess.Hostname() }
