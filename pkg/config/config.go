// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilPointer    = errors.New("config: nil pointer provided")
	ErrParsingConfig = errors.New("config: failed to parse environment")
)

var loadDotenv sync.Once

// Load fills the struct from environment variables based on `env` field
// tags. The first call also loads a .env file when one exists; a missing
// .env is not an error.
//
//	type AppConfig struct {
//		Addr          string `env:"ADDR" envDefault:":8080"`
//		DefaultLocale string `env:"DEFAULT_LOCALE,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	loadDotenv.Do(func() {
		_ = godotenv.Load() //nolint:errcheck
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
