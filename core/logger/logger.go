// Package logger writes application events as JSON lines. Every event is
// wrapped in a LogRecord envelope carrying a timestamp and the session that
// produced it, so one log file can interleave many sessions and still be
// grepped apart.
package logger

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// LogRecord is the envelope around every logged event.
type LogRecord struct {
	TimestampMicros int64       `json:"timestamp_micros"`
	SessionID       string      `json:"session_id,omitempty"`
	EventType       string      `json:"event_type"`
	Event           interface{} `json:"event"`
}

// Recorder persists a single LogRecord.
type Recorder func(*LogRecord) error

// NewJSONLinesRecorder returns a Recorder that writes one JSON object per
// line to w. Writes are serialized so concurrent sessions can share one
// file.
func NewJSONLinesRecorder(w io.Writer) Recorder {
	var mu sync.Mutex
	return func(rec *LogRecord) error {
		line, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		if _, err := w.Write(line); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
}

// Logger records typed events through a Recorder.
type Logger struct {
	record    Recorder
	sessionID string
	now       func() time.Time
}

// New creates a Logger around rec.
func New(rec Recorder) *Logger {
	return &Logger{record: rec, now: time.Now}
}

// NewNop returns a Logger that discards every event.
func NewNop() *Logger {
	return &Logger{record: func(*LogRecord) error { return nil }, now: time.Now}
}

// WithSession returns a copy of the logger that stamps records with the
// given session ID.
func (l *Logger) WithSession(id string) *Logger {
	copied := *l
	copied.sessionID = id
	return &copied
}

// NewSessionID returns a random identifier suitable for WithSession.
func NewSessionID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(buf[:])
}

func (l *Logger) log(eventType string, event interface{}) {
	if l == nil || l.record == nil {
		return
	}
	// Event log failures must never break command execution.
	_ = l.record(&LogRecord{
		TimestampMicros: l.now().UnixNano() / int64(time.Microsecond),
		SessionID:       l.sessionID,
		EventType:       eventType,
		Event:           event,
	})
}

// Event type names stored in the LogRecord envelope.
const (
	EventTypeSessionStart = "session_start"
	EventTypeCommandRun   = "command_run"
	EventTypeParseFailure = "parse_failure"
	EventTypeFallbackExec = "fallback_exec"
	EventTypeHandlerPanic = "handler_panic"
	EventTypeHTTPRequest  = "http_request"
)

// SessionStart marks the creation of an interactive or served session.
type SessionStart struct {
	User     string `json:"user"`
	Hostname string `json:"hostname"`
}

// CommandRun records a command line accepted by the engine.
type CommandRun struct {
	Command string `json:"command"`
	Dir     string `json:"dir"`
}

// ParseFailure records a command line that failed tokenization.
type ParseFailure struct {
	Command string `json:"command"`
	Reason  string `json:"reason"`
}

// FallbackExec records a command delegated to the host shell.
type FallbackExec struct {
	Command  string `json:"command"`
	ExitCode int    `json:"exit_code"`
}

// HandlerPanic records a builtin fault contained at the engine boundary.
type HandlerPanic struct {
	Command string `json:"command"`
	Value   string `json:"value"`
}

// HTTPRequest records one served request.
type HTTPRequest struct {
	Method         string `json:"method"`
	Path           string `json:"path"`
	RemoteAddr     string `json:"remote_addr"`
	Status         int    `json:"status"`
	DurationMicros int64  `json:"duration_micros"`
}

// LogSessionStart records a SessionStart event.
func (l *Logger) LogSessionStart(e SessionStart) { l.log(EventTypeSessionStart, e) }

// LogCommandRun records a CommandRun event.
func (l *Logger) LogCommandRun(e CommandRun) { l.log(EventTypeCommandRun, e) }

// LogParseFailure records a ParseFailure event.
func (l *Logger) LogParseFailure(e ParseFailure) { l.log(EventTypeParseFailure, e) }

// LogFallbackExec records a FallbackExec event.
func (l *Logger) LogFallbackExec(e FallbackExec) { l.log(EventTypeFallbackExec, e) }

// LogHandlerPanic records a HandlerPanic event.
func (l *Logger) LogHandlerPanic(e HandlerPanic) { l.log(EventTypeHandlerPanic, e) }

// LogHTTPRequest records an HTTPRequest event.
func (l *Logger) LogHTTPRequest(e HTTPRequest) { l.log(EventTypeHTTPRequest, e) }
