package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/websh-dev/websh/core/shell/shelltest"
	"github.com/websh-dev/websh/core/sysinfo"
	"github.com/websh-dev/websh/core/sysinfo/sysinfotest"
)

func TestKill(t *testing.T) {
	cmd := shelltest.Command(Kill, "kill", "4242")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "Process 4242 terminated\n", string(out))
	assert.Equal(t, 0, cmd.ExitStatus)

	fake := cmd.Session.SysInfo().(*sysinfotest.Fake)
	assert.Equal(t, []int32{4242}, fake.Terminated)
}

func TestKillInvalidPID(t *testing.T) {
	cmd := shelltest.Command(Kill, "kill", "abc")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "kill: invalid PID 'abc'\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestKillNoSuchProcess(t *testing.T) {
	cmd := shelltest.Command(Kill, "kill", "9999")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "kill: no such process: 9999\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestKillPermissionDenied(t *testing.T) {
	session := shelltest.NewSession()
	fake := session.SysInfo().(*sysinfotest.Fake)
	fake.TerminateErr = map[int32]error{1: sysinfo.ErrPermissionDenied}

	cmd := shelltest.Command(Kill, "kill", "1")
	cmd.Session = session
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "kill: permission denied: 1\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestKillMissingOperand(t *testing.T) {
	cmd := shelltest.Command(Kill, "kill")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, "kill: missing operand\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
