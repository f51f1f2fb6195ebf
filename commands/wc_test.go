package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/shell/shelltest"
)

func TestWc(t *testing.T) {
	cmd := shelltest.Command(Wc, "wc", "/poem.txt")
	cmd.Setup = func(s *shell.Session) error {
		return afero.WriteFile(s.FS(), "/poem.txt", []byte("one two\nthree\n"), 0644)
	}

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "       2        3       14 /poem.txt\n", string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}

func TestWcUnterminatedFinalLine(t *testing.T) {
	cmd := shelltest.Command(Wc, "wc", "/log.txt")
	cmd.Setup = func(s *shell.Session) error {
		return afero.WriteFile(s.FS(), "/log.txt", []byte("a\nb"), 0644)
	}

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "       1        2        3 /log.txt\n", string(out))
}

func TestWcMissingFile(t *testing.T) {
	cmd := shelltest.Command(Wc, "wc", "/gone.txt")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "wc: /gone.txt: No such file or directory\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestWcMissingOperand(t *testing.T) {
	cmd := shelltest.Command(Wc, "wc")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "wc: missing operand\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
