// Package shelltest runs builtin handlers against a deterministic
// in-memory session so tests get stable prompts, timestamps and system
// data.
package shelltest

import (
	"bytes"
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/sysinfo/sysinfotest"
)

// NewSession returns a session over an empty in-memory filesystem rooted
// at / with a fixed clock and canned system data.
func NewSession() *shell.Session {
	return shell.NewSession(shell.SessionParams{
		FS:  afero.NewMemMapFs(),
		Dir: "/",
		Environ: []string{
			"HOME=/home/user",
			"PATH=/usr/bin:/bin",
			"USER=user",
		},
		SysInfo:  sysinfotest.Default(),
		User:     "user",
		Hostname: "testhost",
		Clock: func() time.Time {
			// Go's reference timestamp with a different value in each position.
			return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
		},
	})
}

// Cmd runs a single handler the way exec.Cmd runs a binary.
type Cmd struct {
	// Process is the handler under test.
	Process shell.ProcessFunc
	// Argv holds the arguments; the first should be the verb name.
	Argv []string
	// Session hosts the run. Leave nil for a fresh deterministic session;
	// after Run it holds whatever session was used, so tests can assert
	// on state the handler mutated.
	Session *shell.Session
	// Setup mutates the session before the run, seeding files or state.
	Setup func(s *shell.Session) error

	ExitStatus int
}

// Command builds a Cmd for the handler with the given argv.
func Command(process shell.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// Run executes the handler and records its exit status, discarding
// output.
func (c *Cmd) Run() error {
	return c.start(io.Discard, io.Discard)
}

// Output executes the handler and returns what it wrote to stdout.
func (c *Cmd) Output() ([]byte, error) {
	var stdout, stderr bytes.Buffer
	if err := c.start(&stdout, &stderr); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// CombinedOutput executes the handler and returns stdout and stderr
// interleaved.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.start(&buf, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Cmd) start(stdout, stderr io.Writer) error {
	if c.Session == nil {
		c.Session = NewSession()
	}
	if c.Setup != nil {
		if err := c.Setup(c.Session); err != nil {
			return err
		}
	}
	c.ExitStatus = c.Process(shell.NewProc(c.Session, c.Argv, stdout, stderr))
	return nil
}
