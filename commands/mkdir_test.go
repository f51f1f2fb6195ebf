package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell/shelltest"
)

func TestMkdir(t *testing.T) {
	cmd := shelltest.Command(Mkdir, "mkdir", "/a", "/b")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)

	for _, dir := range []string{"/a", "/b"} {
		ok, _ := afero.DirExists(cmd.Session.FS(), dir)
		assert.True(t, ok, dir)
	}
}

func TestMkdirExisting(t *testing.T) {
	cmd := shelltest.Command(Mkdir, "mkdir", "/a")
	cmd.Setup = mkdirs("/a")

	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "mkdir: cannot create directory '/a': File exists\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestMkdirParents(t *testing.T) {
	cmd := shelltest.Command(Mkdir, "mkdir", "-p", "/deep/nested/dir")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)

	ok, _ := afero.DirExists(cmd.Session.FS(), "/deep/nested/dir")
	assert.True(t, ok)

	// -p tolerates directories that already exist.
	again := shelltest.Command(Mkdir, "mkdir", "-p", "/deep/nested/dir")
	again.Session = cmd.Session
	assert.NoError(t, again.Run())
	assert.Equal(t, 0, again.ExitStatus)
}

func TestMkdirContinuesPastFailures(t *testing.T) {
	cmd := shelltest.Command(Mkdir, "mkdir", "/a", "/c")
	cmd.Setup = mkdirs("/a")

	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "mkdir: cannot create directory '/a': File exists\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)

	ok, _ := afero.DirExists(cmd.Session.FS(), "/c")
	assert.True(t, ok)
}

func TestMkdirMissingOperand(t *testing.T) {
	cmd := shelltest.Command(Mkdir, "mkdir")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "mkdir: missing operand\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
