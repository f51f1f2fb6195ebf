package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell/shelltest"
)

func TestRmFile(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "/src/a.txt")
	cmd.Setup = cpFixture

	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)

	exists, _ := afero.Exists(cmd.Session.FS(), "/src/a.txt")
	assert.False(t, exists)
}

func TestRmDirectoryNeedsRecursive(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "/src")
	cmd.Setup = cpFixture

	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "rm: cannot remove '/src': Is a directory\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestRmRecursive(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "-r", "/src")
	cmd.Setup = cpFixture

	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)

	exists, _ := afero.DirExists(cmd.Session.FS(), "/src")
	assert.False(t, exists)
}

func TestRmMissing(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "/gone.txt")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "rm: cannot remove '/gone.txt': No such file or directory\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestRmForceMissingIsQuiet(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "-f", "/gone.txt")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Empty(t, string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}

func TestRmForceStillRefusesDirectories(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "-f", "/src")
	cmd.Setup = cpFixture

	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "rm: cannot remove '/src': Is a directory\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestRmCluster(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm", "-rf", "/src", "/gone.txt")
	cmd.Setup = cpFixture

	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Empty(t, string(out))
	assert.Equal(t, 0, cmd.ExitStatus)

	exists, _ := afero.DirExists(cmd.Session.FS(), "/src")
	assert.False(t, exists)
}

func TestRmMissingOperand(t *testing.T) {
	cmd := shelltest.Command(Rm, "rm")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "rm: missing operand\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
