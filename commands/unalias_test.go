package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/shell/shelltest"
)

func TestUnalias(t *testing.T) {
	cmd := shelltest.Command(Unalias, "unalias", "ll")
	cmd.Setup = func(s *shell.Session) error {
		s.Aliases().Set("ll", "ls -la")
		return nil
	}

	assert.NoError(t, cmd.Run())
	assert.Equal(t, 0, cmd.ExitStatus)

	_, ok := cmd.Session.Aliases().Get("ll")
	assert.False(t, ok)
}

func TestUnaliasUnknown(t *testing.T) {
	cmd := shelltest.Command(Unalias, "unalias", "nope")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "unalias: nope: not found\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestUnaliasMissingOperand(t *testing.T) {
	cmd := shelltest.Command(Unalias, "unalias")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "unalias: missing operand\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
