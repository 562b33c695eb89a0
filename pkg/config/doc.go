// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//	cfg, err := config.Load[AppConfig](
//	    config.WithOptionalEnvFiles(".env"),
//	)
//
// Values from .env files are layered under the process environment, so a
// variable exported in the shell always wins. Nothing is cached and no
// global state is mutated: each call returns a fresh value that callers pass
// on explicitly.
package config
