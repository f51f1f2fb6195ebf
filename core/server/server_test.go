package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/websh-dev/websh/core/logger"
	"github.com/websh-dev/websh/core/shell"
)

type fakeRegistry map[string]shell.ProcessFunc

func (r fakeRegistry) Lookup(name string) (shell.ProcessFunc, bool) {
	fn, ok := r[name]
	return fn, ok
}

func (r fakeRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newTestServer(t *testing.T, params Params) *httptest.Server {
	t.Helper()
	if params.Engine == nil {
		count := 0
		registry := fakeRegistry{
			"greet": func(p *shell.Proc) int {
				fmt.Fprintln(p.Stdout(), "hello")
				return 0
			},
			"count": func(p *shell.Proc) int {
				count++
				fmt.Fprintln(p.Stdout(), count)
				return 0
			},
			"fail": func(p *shell.Proc) int {
				fmt.Fprintln(p.Stderr(), "nope")
				return 1
			},
		}
		session := shell.NewSession(shell.SessionParams{FS: afero.NewMemMapFs(), Dir: "/"})
		params.Engine = shell.NewEngine(session, registry)
	}
	if params.Log == nil {
		params.Log = logger.NewNop()
	}

	srv := httptest.NewServer(New(params).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, srv *httptest.Server, body string) (*http.Response, shell.CommandResult) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/execute", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var result shell.CommandResult
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp, result
}

func TestServerExecute(t *testing.T) {
	srv := newTestServer(t, Params{})

	resp, result := execute(t, srv, `{"command": "greet"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, shell.CommandResult{Output: "hello"}, result)
}

func TestServerExecuteFailure(t *testing.T) {
	srv := newTestServer(t, Params{})

	_, result := execute(t, srv, `{"command": "fail"}`)

	assert.Equal(t, shell.CommandResult{Error: "nope", ExitCode: 1}, result)
}

func TestServerSessionCarriesOver(t *testing.T) {
	srv := newTestServer(t, Params{})

	_, first := execute(t, srv, `{"command": "count"}`)
	_, second := execute(t, srv, `{"command": "count"}`)

	assert.Equal(t, "1", first.Output)
	assert.Equal(t, "2", second.Output)
}

func TestServerEmptyAndMalformedBodies(t *testing.T) {
	srv := newTestServer(t, Params{})

	for _, body := range []string{"", "{}", "no json at all", `{"command": ""}`} {
		resp, result := execute(t, srv, body)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body %q", body)
		assert.Equal(t, shell.CommandResult{}, result, "body %q", body)
	}
}

func TestServerMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, Params{})

	resp, err := http.Get(srv.URL + "/execute")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServerRateLimit(t *testing.T) {
	srv := newTestServer(t, Params{RequestsPerSecond: 0.0001, Burst: 2})

	first, _ := execute(t, srv, `{"command": "greet"}`)
	second, _ := execute(t, srv, `{"command": "greet"}`)
	third, _ := execute(t, srv, `{"command": "greet"}`)

	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, third.StatusCode)
}

func TestServerHealthz(t *testing.T) {
	srv := newTestServer(t, Params{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
