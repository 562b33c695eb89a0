package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files    []string
	optional []string
	prefix   string
	environ  []string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles layers the given .env files under the process environment.
// Later files override earlier ones. A missing file is an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithOptionalEnvFiles is WithEnvFiles for files that may not exist.
func WithOptionalEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.optional = append(o.optional, paths...)
	}
}

// WithPrefix prepends prefix to every env key of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnviron replaces the process environment ("KEY=value" pairs).
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// Load parses env-tagged fields of T. Values come from the .env files given
// by options, overridden by the process environment.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig](config.WithOptionalEnvFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	for _, path := range o.optional {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			var zero T
			return zero, fmt.Errorf("%w: %s: %v", ErrEnvFile, path, err)
		}
		merge(vars, values)
	}
	for _, path := range o.files {
		values, err := godotenv.Read(path)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %s: %v", ErrEnvFile, path, err)
		}
		merge(vars, values)
	}

	environ := o.environ
	if environ == nil {
		environ = os.Environ()
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
