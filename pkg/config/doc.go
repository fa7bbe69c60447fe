// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct using `env` field tags and
//     caches the result per type, so each type is parsed once.
//   - MustLoad and MustLoadEnv panic on failure.
//   - ResetCache and ForceReloadConfig drop cached values, which is mostly
//     useful in tests.
//
// # Usage
//
//	type Config struct {
//		CatalogPath string `env:"DATAVALIDATOR_CATALOG"`
//		LogLevel    string `env:"DATAVALIDATOR_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A failed parse is not cached: fixing the environment and calling Load
// again parses the type anew.
package config
