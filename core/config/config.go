package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	EventLogName      = "events.log"
)

type Configuration struct {
	configurationDir string
	configFs         afero.Fs

	Banner   string   `json:"banner"`
	HTTP     HTTP     `json:"http"`
	Fallback Fallback `json:"fallback"`
	History  History  `json:"history"`
	Aliases  []Alias  `json:"aliases" validate:"unique=Name,dive"`
}

// HTTP configures the JSON API server.
type HTTP struct {
	Port int `json:"port" validate:"gte=0,lte=65535"`
	// RequestsPerSecond refills the rate limit bucket; Burst is its
	// capacity. Zero disables rate limiting.
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gte=0"`
	Burst             int64   `json:"burst" validate:"gte=0"`
}

// Fallback configures how unrecognized commands run on the host.
type Fallback struct {
	TimeoutSeconds int `json:"timeout_seconds" validate:"gte=0"`
	// Shell overrides the host shell prefix, e.g. [/bin/bash, -c].
	// Empty uses the platform default.
	Shell []string `json:"shell"`
}

// History configures the history builtin.
type History struct {
	DisplayLimit int `json:"display_limit" validate:"gte=1"`
}

// Alias seeds one alias definition into every new session.
type Alias struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// FallbackTimeout returns the configured timeout for host command
// execution, defaulting to 30 seconds.
func (c *Configuration) FallbackTimeout() time.Duration {
	if c.Fallback.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Fallback.TimeoutSeconds) * time.Second
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// OpenEventLog opens the JSON lines event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	name := filepath.Join(c.configurationDir, EventLogName)
	return c.fs().OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the JSON lines event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	name := filepath.Join(c.configurationDir, EventLogName)
	return c.fs().OpenFile(name, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
