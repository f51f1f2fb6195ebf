package shell

import (
	"strings"

	"github.com/anmitsu/go-shlex"
)

// ParseError reports a command line that couldn't be split into tokens,
// usually because of an unterminated quote.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return "Parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Tokenize splits a raw command line into shell words. Single and double
// quotes group words and are removed from the result. Empty and
// whitespace-only lines produce no tokens and no error; malformed quoting
// produces a *ParseError.
func Tokenize(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}
	return tokens, nil
}
