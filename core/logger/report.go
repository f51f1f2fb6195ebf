package logger

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Entry is the read side of LogRecord. The event payload stays raw until a
// consumer decodes it against the event type.
type Entry struct {
	TimestampMicros int64           `json:"timestamp_micros"`
	SessionID       string          `json:"session_id"`
	EventType       string          `json:"event_type"`
	Event           json.RawMessage `json:"event"`
}

func (e *Entry) decode(event interface{}) bool {
	return json.Unmarshal(e.Event, event) == nil
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(entry *Entry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}

		handler(&entry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"invalid_log_entries,omitempty"`

	Sessions      SessionReport      `json:"session_report"`
	Commands      CommandRunReport   `json:"command_report"`
	ParseFailures ParseFailureReport `json:"parse_failure_report"`
	Fallbacks     FallbackReport     `json:"fallback_report"`
	Panics        PanicReport        `json:"panic_report"`
	HTTP          HTTPReport         `json:"http_report"`
}

// Update folds one log entry into the report.
func (r *Report) Update(entry *Entry) {
	r.LogEntries++

	switch entry.EventType {
	case EventTypeSessionStart:
		var event SessionStart
		if entry.decode(&event) {
			r.Sessions.update(&event)
			return
		}
	case EventTypeCommandRun:
		var event CommandRun
		if entry.decode(&event) {
			r.Commands.update(&event)
			return
		}
	case EventTypeParseFailure:
		var event ParseFailure
		if entry.decode(&event) {
			r.ParseFailures.update(&event)
			return
		}
	case EventTypeFallbackExec:
		var event FallbackExec
		if entry.decode(&event) {
			r.Fallbacks.update(&event)
			return
		}
	case EventTypeHandlerPanic:
		var event HandlerPanic
		if entry.decode(&event) {
			r.Panics.update(&event)
			return
		}
	case EventTypeHTTPRequest:
		var event HTTPRequest
		if entry.decode(&event) {
			r.HTTP.update(&event)
			return
		}
	}

	r.InvalidEntries.Increment(entry.EventType)
}

type SessionReport struct {
	Count int        `json:"count"`
	Users StrCounter `json:"users"`
}

func (r *SessionReport) update(event *SessionStart) {
	r.Count++
	r.Users.Increment(event.User)
}

type CommandRunReport struct {
	// Name of the command verb, lowercased the way the engine matches it.
	CommandNames StrCounter `json:"command_names"`
	Dirs         StrCounter `json:"dirs"`
}

func (r *CommandRunReport) update(event *CommandRun) {
	if fields := strings.Fields(event.Command); len(fields) > 0 {
		r.CommandNames.Increment(strings.ToLower(fields[0]))
	}
	r.Dirs.Increment(event.Dir)
}

type ParseFailureReport struct {
	Commands StrCounter `json:"commands"`
	Reasons  StrCounter `json:"reasons"`
}

func (r *ParseFailureReport) update(event *ParseFailure) {
	r.Commands.Increment(event.Command)
	r.Reasons.Increment(event.Reason)
}

type FallbackReport struct {
	Count        int        `json:"count"`
	CommandNames StrCounter `json:"command_names"`
	ExitCodes    StrCounter `json:"exit_codes"`
}

func (r *FallbackReport) update(event *FallbackExec) {
	r.Count++
	if fields := strings.Fields(event.Command); len(fields) > 0 {
		r.CommandNames.Increment(fields[0])
	}
	r.ExitCodes.Increment(strconv.Itoa(event.ExitCode))
}

type PanicReport struct {
	Contexts []string `json:"contexts"`
}

func (r *PanicReport) update(event *HandlerPanic) {
	r.Contexts = append(r.Contexts, event.Command+": "+event.Value)
}

type HTTPReport struct {
	Count    int        `json:"count"`
	Paths    StrCounter `json:"paths"`
	Statuses StrCounter `json:"statuses"`
}

func (r *HTTPReport) update(event *HTTPRequest) {
	r.Count++
	r.Paths.Increment(event.Path)
	r.Statuses.Increment(strconv.Itoa(event.Status))
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}
