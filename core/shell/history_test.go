package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistoryTail(t *testing.T) {
	h := &History{}
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Tail(10))

	when := time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, cmd := range []string{"pwd", "ls", "cd /tmp"} {
		h.Append(HistoryEntry{Command: cmd, Time: when, Dir: "/"})
	}

	assert.Equal(t, 3, h.Len())

	tail := h.Tail(2)
	assert.Equal(t, "ls", tail[0].Command)
	assert.Equal(t, "cd /tmp", tail[1].Command)

	// Requests beyond the stored length return everything.
	assert.Len(t, h.Tail(10), 3)
	assert.Empty(t, h.Tail(0))
	assert.Empty(t, h.Tail(-1))
}
