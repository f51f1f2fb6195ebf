package shell

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/websh-dev/websh/core/sysinfo"
)

// DefaultHistoryWindow is how many history entries the history verb shows
// when no other limit is configured.
const DefaultHistoryWindow = 50

// SessionParams configures a new Session. Zero fields get safe defaults.
type SessionParams struct {
	// FS is the filesystem all verbs operate on.
	FS afero.Fs
	// Dir is the initial working directory, assumed to exist.
	Dir string
	// Environ seeds the environment overlay, usually os.Environ().
	Environ []string
	// SysInfo supplies process and host data to the system verbs.
	SysInfo sysinfo.Provider
	// User and Hostname feed the prompt and whoami.
	User     string
	Hostname string
	// Clock is the time source; nil means time.Now.
	Clock func() time.Time
	// HistoryWindow bounds the history display; 0 means
	// DefaultHistoryWindow.
	HistoryWindow int
}

// Session is the mutable state shared by every command in one engine
// instance: working directory, environment overlay, aliases and history.
// It is not safe for concurrent use; callers hosting a session across
// goroutines serialize whole Execute calls.
type Session struct {
	fs      afero.Fs
	cwd     string
	env     *Env
	aliases *Aliases
	history *History
	sys     sysinfo.Provider
	clock   func() time.Time

	user     string
	hostname string
	window   int
}

// NewSession creates a session from params.
func NewSession(params SessionParams) *Session {
	s := &Session{
		fs:       params.FS,
		cwd:      params.Dir,
		env:      NewEnvFromList(params.Environ),
		aliases:  NewAliases(),
		history:  &History{},
		sys:      params.SysInfo,
		clock:    params.Clock,
		user:     params.User,
		hostname: params.Hostname,
		window:   params.HistoryWindow,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.cwd == "" {
		s.cwd = "/"
	}
	s.cwd = filepath.Clean(s.cwd)
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.user == "" {
		s.user = "user"
	}
	if s.hostname == "" {
		s.hostname = "localhost"
	}
	if s.window <= 0 {
		s.window = DefaultHistoryWindow
	}
	return s
}

// FS returns the session filesystem.
func (s *Session) FS() afero.Fs { return s.fs }

// Cwd returns the current working directory, always absolute and
// normalized.
func (s *Session) Cwd() string { return s.cwd }

// Env returns the environment overlay.
func (s *Session) Env() *Env { return s.env }

// Aliases returns the alias table.
func (s *Session) Aliases() *Aliases { return s.aliases }

// History returns the command history.
func (s *Session) History() *History { return s.history }

// HistoryWindow returns how many history entries should be displayed.
func (s *Session) HistoryWindow() int { return s.window }

// SysInfo returns the process/system information provider.
func (s *Session) SysInfo() sysinfo.Provider { return s.sys }

// Now returns the current time from the session clock.
func (s *Session) Now() time.Time { return s.clock() }

// User returns the session username.
func (s *Session) User() string { return s.user }

// Hostname returns the session hostname.
func (s *Session) Hostname() string { return s.hostname }

// Resolve turns path into an absolute, normalized path. Relative paths are
// resolved against the session working directory, never against the host
// process's own.
func (s *Session) Resolve(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.cwd, path)
	}
	return filepath.Clean(path)
}

// Home returns the session home directory from the environment overlay,
// falling back to the filesystem root.
func (s *Session) Home() string {
	if home := s.env.Getenv("HOME"); home != "" {
		return home
	}
	if runtime.GOOS == "windows" {
		if profile := s.env.Getenv("USERPROFILE"); profile != "" {
			return profile
		}
	}
	return "/"
}

// Chdir validates that dir resolves to an existing directory and makes it
// the working directory. The working directory is never left pointing at a
// missing path.
func (s *Session) Chdir(dir string) error {
	target := s.Resolve(dir)
	if ok, err := afero.DirExists(s.fs, target); err != nil || !ok {
		return fmt.Errorf("%s: No such directory", target)
	}
	s.cwd = target
	return nil
}

// Prompt renders the interactive prompt for the session. Directories longer
// than 30 characters are middle-truncated to "..." plus their trailing 27.
func (s *Session) Prompt() string {
	dir := s.cwd
	if runes := []rune(dir); len(runes) > 30 {
		dir = "..." + string(runes[len(runes)-27:])
	}
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.hostname, dir)
}

// ExpandUser rewrites a leading ~ to the session home directory.
func (s *Session) ExpandUser(path string) string {
	if path == "~" {
		return s.Home()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(s.Home(), path[2:])
	}
	return path
}
