package shell

import "time"

// HistoryEntry records one executed command line.
type HistoryEntry struct {
	Command string
	Time    time.Time
	Dir     string
}

// History is the append-only command log of a session. Storage is unbounded;
// consumers display a bounded tail of it.
type History struct {
	entries []HistoryEntry
}

// Append adds an entry to the end of the history.
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Tail returns the most recent n entries, oldest first. The returned slice
// aliases the history's storage and must not be mutated.
func (h *History) Tail(n int) []HistoryEntry {
	if n < 0 {
		n = 0
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return h.entries[len(h.entries)-n:]
}
