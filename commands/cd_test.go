package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/shell/shelltest"
)

func mkdirs(dirs ...string) func(s *shell.Session) error {
	return func(s *shell.Session) error {
		for _, dir := range dirs {
			if err := s.FS().MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestCd(t *testing.T) {
	cmd := shelltest.Command(Cd, "cd", "/tmp")
	cmd.Setup = mkdirs("/tmp")

	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "/tmp", cmd.Session.Cwd())
}

func TestCdHome(t *testing.T) {
	for _, args := range [][]string{{"cd"}, {"cd", "-"}, {"cd", "~"}} {
		cmd := &shelltest.Cmd{Process: Cd, Argv: args, Setup: mkdirs("/home/user", "/tmp")}
		assert.NoError(t, cmd.Run())
		assert.Equal(t, 0, cmd.ExitStatus, args)
		assert.Equal(t, "/home/user", cmd.Session.Cwd(), args)
	}
}

func TestCdTilde(t *testing.T) {
	cmd := shelltest.Command(Cd, "cd", "~/docs")
	cmd.Setup = mkdirs("/home/user/docs")

	assert.NoError(t, cmd.Run())
	assert.Equal(t, "/home/user/docs", cmd.Session.Cwd())
}

func TestCdMissing(t *testing.T) {
	cmd := shelltest.Command(Cd, "cd", "/no/such/dir")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "cd: /no/such/dir: No such directory\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Equal(t, "/", cmd.Session.Cwd())
}
