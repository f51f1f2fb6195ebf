package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/user/docs", 0755))
	require.NoError(t, fs.MkdirAll("/tmp", 0755))

	return NewSession(SessionParams{
		FS:       fs,
		Dir:      "/home/user",
		Environ:  []string{"HOME=/home/user"},
		User:     "user",
		Hostname: "testhost",
	})
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(SessionParams{})

	assert.Equal(t, "/", s.Cwd())
	assert.Equal(t, "user", s.User())
	assert.Equal(t, "localhost", s.Hostname())
	assert.Equal(t, DefaultHistoryWindow, s.HistoryWindow())
	assert.NotNil(t, s.FS())
	assert.False(t, s.Now().IsZero())
}

func TestSessionResolve(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "/home/user/docs", s.Resolve("docs"))
	assert.Equal(t, "/tmp", s.Resolve("/tmp"))
	assert.Equal(t, "/home", s.Resolve(".."))
	assert.Equal(t, "/home/user", s.Resolve("."))
	assert.Equal(t, "/home/user/docs", s.Resolve("./docs/../docs"))
}

func TestSessionChdir(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Chdir("docs"))
	assert.Equal(t, "/home/user/docs", s.Cwd())

	require.NoError(t, s.Chdir("../../../tmp"))
	assert.Equal(t, "/tmp", s.Cwd())

	// A failed chdir leaves the working directory untouched.
	err := s.Chdir("/does/not/exist")
	require.Error(t, err)
	assert.Equal(t, "/does/not/exist: No such directory", err.Error())
	assert.Equal(t, "/tmp", s.Cwd())
}

func TestSessionPrompt(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "user@testhost:/home/user$ ", s.Prompt())
}

func TestSessionPromptTruncatesLongDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	long := "/aaaaaaaaaa/bbbbbbbbbb/cccccccccc"
	require.NoError(t, fs.MkdirAll(long, 0755))

	s := NewSession(SessionParams{FS: fs, Dir: long, User: "user", Hostname: "testhost"})
	assert.Equal(t, "user@testhost:...aaaaa/bbbbbbbbbb/cccccccccc$ ", s.Prompt())
}

func TestSessionExpandUser(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "/home/user", s.ExpandUser("~"))
	assert.Equal(t, "/home/user/docs", s.ExpandUser("~/docs"))
	assert.Equal(t, "docs", s.ExpandUser("docs"))
	assert.Equal(t, "/tmp/~", s.ExpandUser("/tmp/~"))
}

func TestSessionHome(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "/home/user", s.Home())

	bare := NewSession(SessionParams{FS: afero.NewMemMapFs()})
	assert.Equal(t, "/", bare.Home())
}
