package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell/shelltest"
)

func TestDate(t *testing.T) {
	cmd := shelltest.Command(Date, "date")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "Mon Jan 02 03:04:05 UTC 2006\n", string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}
