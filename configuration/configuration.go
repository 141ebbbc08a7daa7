// Package configuration holds config parameters from several sources (files,
// env vars, flags) behind a single lookup.
package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = errors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them
// into the loaded config. Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return ErrConfigDoesNotExist
		}

		return err
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	case ".toml":
		parser = &TOMLLowerParser{}
	default:
		return ErrUnknownConfigFormat
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the
// loaded config. The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// Exists checks whether the given key holds a value.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// Get returns the raw value of the given key.
func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(strings.ToLower(key))
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the string slice value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Bool returns the boolean value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}
