package shell

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/websh-dev/websh/core/logger"
)

// Registry resolves verb names to built-in handlers. Names are matched
// exactly; the engine lowercases verbs before lookup.
type Registry interface {
	Lookup(name string) (ProcessFunc, bool)
	Names() []string
}

// CommandRunner executes a raw line outside the built-in set.
type CommandRunner interface {
	Run(line, dir string, environ []string) CommandResult
}

// Engine orchestrates one session: tokenize, expand aliases, dispatch to a
// builtin or fall back to the host shell, and keep history. Execute is
// synchronous and the engine holds no internal locks; concurrent callers
// must serialize whole Execute calls.
type Engine struct {
	session  *Session
	registry Registry
	fallback CommandRunner
	log      *logger.Logger
}

// EngineOption configures NewEngine.
type EngineOption func(*Engine)

// WithFallback replaces the default host-shell runner.
func WithFallback(r CommandRunner) EngineOption {
	return func(e *Engine) { e.fallback = r }
}

// WithLogger attaches an event logger.
func WithLogger(l *logger.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine over sess dispatching through registry.
func NewEngine(sess *Session, registry Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		session:  sess,
		registry: registry,
		fallback: NewExecRunner(DefaultFallbackTimeout, nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns the engine's session state.
func (e *Engine) Session() *Session { return e.session }

// Prompt renders the prompt for the current session state.
func (e *Engine) Prompt() string { return e.session.Prompt() }

// Execute runs one command line to completion and returns its result. It
// never panics: builtin faults are contained and reported as generic
// command errors.
func (e *Engine) Execute(line string) CommandResult {
	if strings.TrimSpace(line) == "" {
		return CommandResult{}
	}

	// History is the first authoritative statement about a line: even
	// commands that later fail to parse are recorded.
	sess := e.session
	sess.History().Append(HistoryEntry{
		Command: line,
		Time:    sess.Now(),
		Dir:     sess.Cwd(),
	})
	e.log.LogCommandRun(logger.CommandRun{Command: line, Dir: sess.Cwd()})

	tokens, err := Tokenize(line)
	if err != nil {
		e.log.LogParseFailure(logger.ParseFailure{Command: line, Reason: err.Error()})
		return CommandResult{Error: err.Error(), ExitCode: 1}
	}
	if len(tokens) == 0 {
		return CommandResult{}
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	// Aliases expand exactly once; the result is never re-expanded, so
	// alias cycles cannot loop.
	if text, ok := sess.Aliases().Get(verb); ok {
		if expanded, err := Tokenize(text); err == nil {
			merged := append(expanded, args...)
			if len(merged) == 0 {
				return CommandResult{}
			}
			verb = strings.ToLower(merged[0])
			args = merged[1:]
		}
	}

	if fn, ok := e.registry.Lookup(verb); ok {
		return e.runBuiltin(line, fn, append([]string{verb}, args...))
	}

	// Unknown verbs go to the host with the original line text: aliases
	// affect builtin dispatch only, never the fallback's literal command.
	result := e.fallback.Run(line, sess.Cwd(), sess.Env().Environ())
	e.log.LogFallbackExec(logger.FallbackExec{Command: line, ExitCode: result.ExitCode})
	return result
}

func (e *Engine) runBuiltin(line string, fn ProcessFunc, argv []string) (result CommandResult) {
	var stdout, stderr bytes.Buffer
	proc := NewProc(e.session, argv, &stdout, &stderr)

	defer func() {
		if r := recover(); r != nil {
			e.log.LogHandlerPanic(logger.HandlerPanic{Command: line, Value: fmt.Sprint(r)})
			result = CommandResult{
				Error:    fmt.Sprintf("Error executing command: %v", r),
				ExitCode: 1,
			}
		}
	}()

	code := fn(proc)
	return CommandResult{
		Output:   strings.TrimRight(stdout.String(), "\n"),
		Error:    strings.TrimRight(stderr.String(), "\n"),
		ExitCode: code,
	}
}
