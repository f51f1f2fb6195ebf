package shell

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Env is an in-memory environment variable overlay. It is seeded once from
// the host process environment when the session is created and is
// authoritative afterwards: the host environment is never consulted again
// except by the explicit export-existing path.
type Env struct {
	rw   sync.RWMutex
	vars map[string]string
}

// NewEnv returns an empty environment overlay.
func NewEnv() *Env {
	return &Env{vars: make(map[string]string)}
}

// NewEnvFromList builds an overlay from "KEY=VALUE" entries, typically
// os.Environ().
func NewEnvFromList(environ []string) *Env {
	env := NewEnv()
	for _, kv := range environ {
		split := strings.SplitN(kv, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		env.Setenv(key, value)
	}
	return env
}

// Setenv sets the value of the variable named by key.
func (e *Env) Setenv(key, value string) {
	e.rw.Lock()
	defer e.rw.Unlock()
	e.vars[key] = value
}

// LookupEnv retrieves the value of the variable named by key, reporting
// whether it is present.
func (e *Env) LookupEnv(key string) (string, bool) {
	e.rw.RLock()
	defer e.rw.RUnlock()
	val, ok := e.vars[key]
	return val, ok
}

// Getenv retrieves the value of the variable named by key, or "" if unset.
func (e *Env) Getenv(key string) string {
	val, _ := e.LookupEnv(key)
	return val
}

// Environ returns the overlay as sorted "KEY=VALUE" entries, ready to hand
// to a subprocess as its complete environment.
func (e *Env) Environ() []string {
	e.rw.RLock()
	defer e.rw.RUnlock()
	env := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}

// Len returns the number of variables in the overlay.
func (e *Env) Len() int {
	e.rw.RLock()
	defer e.rw.RUnlock()
	return len(e.vars)
}
