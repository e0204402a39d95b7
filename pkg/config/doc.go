// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// Parsing is delegated to github.com/caarlos0/env/v11 (struct tags `env`,
// `envDefault`, `required`) and .env files are read with
// github.com/joho/godotenv. Successfully loaded structs are cached per type,
// so repeated Load calls for the same type return the first result.
//
// # Usage
//
//	type Thresholds struct {
//	    MinAge int `env:"FORM_MIN_AGE" envDefault:"20"`
//	}
//
//	_ = config.LoadEnv(".env.local")
//	var th Thresholds
//	if err := config.Load(&th); err != nil {
//	    return err
//	}
//
// Use Parse to bypass the cache and ResetCache between tests.
//
// # Errors
//
// ErrParsingConfig wraps parser failures, ErrNilPointer rejects nil targets
// and ErrLoadingEnvFile wraps .env read failures. Check them with errors.Is.
package config
