package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	env := NewEnvFromList([]string{"HOME=/home/user", "EMPTY=", "PATH=/bin"})

	assert.Equal(t, "/home/user", env.Getenv("HOME"))
	assert.Equal(t, "", env.Getenv("MISSING"))

	val, ok := env.LookupEnv("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", val)

	_, ok = env.LookupEnv("MISSING")
	assert.False(t, ok)

	env.Setenv("NAME", "value")
	assert.Equal(t, "value", env.Getenv("NAME"))
	assert.Equal(t, 4, env.Len())
}

func TestEnvEnviron(t *testing.T) {
	env := NewEnvFromList([]string{"B=2", "A=1"})
	env.Setenv("C", "3")

	// Sorted, complete, K=V form.
	assert.Equal(t, []string{"A=1", "B=2", "C=3"}, env.Environ())
}

func TestEnvMalformedEntry(t *testing.T) {
	// Entries without "=" become empty-valued variables rather than being
	// dropped.
	env := NewEnvFromList([]string{"WEIRD"})
	val, ok := env.LookupEnv("WEIRD")
	assert.True(t, ok)
	assert.Equal(t, "", val)
}
