// Package conf loads application configuration from the environment, with an
// optional env-file whose values are overridden by real environment variables.
package conf

import (
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFileName is consulted when no explicit file is configured.
const DefaultFileName = ".env"

// Loader reads configuration into a struct pointer.
type Loader struct {
	fileName string
	validate *validator.Validate
}

// Option configures a Loader.
type Option func(*Loader)

// WithFile makes the loader read the given env file in addition to the
// environment.
func WithFile(name string) Option {
	return func(l *Loader) {
		l.fileName = name
	}
}

// WithoutFile disables env-file loading entirely.
func WithoutFile() Option {
	return func(l *Loader) {
		l.fileName = ""
	}
}

// NewLoader returns a Loader that reads the environment plus the default env
// file when it exists.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fileName: DefaultFileName,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates cfg (a struct pointer) and validates the result.
func (l *Loader) Load(cfg interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return fmt.Errorf("configuration must be a pointer to struct, got %T", cfg)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if l.fileName != "" {
		if _, err := os.Stat(l.fileName); err == nil {
			if err := l.mergeFile(cfg); err != nil {
				return err
			}
		}
	}

	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	return nil
}

// mergeFile reads the env file into a fresh copy of the config struct and
// overlays it onto the already-loaded values. ReadConfig re-applies real
// environment variables on top of the file, so after the overwrite the
// precedence is environment, then file, then tag defaults.
func (l *Loader) mergeFile(cfg interface{}) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(l.fileName, fileCfg); err != nil {
		return fmt.Errorf("read config file %s: %w", l.fileName, err)
	}

	if err := mergo.MergeWithOverwrite(cfg, fileCfg); err != nil {
		return fmt.Errorf("merge config file %s: %w", l.fileName, err)
	}

	return nil
}
