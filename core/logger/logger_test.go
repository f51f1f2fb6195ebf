package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	// Go's reference timestamp with a different value in each position.
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestLoggerWritesEnvelope(t *testing.T) {
	var buf bytes.Buffer
	log := New(NewJSONLinesRecorder(&buf)).WithSession("deadbeef01234567")
	log.now = fixedClock

	log.LogCommandRun(CommandRun{Command: "ls -la", Dir: "/home/user"})

	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, int64(1136171045000000), entry.TimestampMicros)
	assert.Equal(t, "deadbeef01234567", entry.SessionID)
	assert.Equal(t, EventTypeCommandRun, entry.EventType)

	var event CommandRun
	require.NoError(t, json.Unmarshal(entry.Event, &event))
	assert.Equal(t, CommandRun{Command: "ls -la", Dir: "/home/user"}, event)
}

func TestLoggerOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	log := New(NewJSONLinesRecorder(&buf))

	log.LogSessionStart(SessionStart{User: "user", Hostname: "testhost"})
	log.LogFallbackExec(FallbackExec{Command: "qux", ExitCode: 127})
	log.LogHTTPRequest(HTTPRequest{Method: "POST", Path: "/execute", Status: 200})

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, json.Valid(line), "line %q", line)
	}
}

func TestLoggerNilIsSafe(t *testing.T) {
	var log *Logger
	log.LogCommandRun(CommandRun{Command: "ls"})
	log.LogSessionStart(SessionStart{})

	NewNop().LogParseFailure(ParseFailure{Command: "x", Reason: "y"})
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

func TestWithSessionCopies(t *testing.T) {
	var buf bytes.Buffer
	base := New(NewJSONLinesRecorder(&buf))
	child := base.WithSession("abc")

	base.LogCommandRun(CommandRun{Command: "one"})
	child.LogCommandRun(CommandRun{Command: "two"})

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second Entry
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "", first.SessionID)
	assert.Equal(t, "abc", second.SessionID)
}
