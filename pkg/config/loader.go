package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *configCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *configCache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *configCache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *configCache) drop(key string) {
	c.mu.Lock()
	delete(c.values, key)
	delete(c.onces, key)
	c.mu.Unlock()
}

// Load parses environment variables into v using its `env` struct tags.
// Each configuration type is parsed once; later calls for the same type
// return the cached value. A .env file in the working directory is loaded
// on first use when present.
//
// Example:
//
//	type Config struct {
//		CatalogPath string `env:"DATAVALIDATOR_CATALOG"`
//		SingleFail  bool   `env:"DATAVALIDATOR_SINGLE_FAIL" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := getTypeName[T]()
	if cached, ok := globalCache.get(key); ok {
		return assign(v, cached)
	}

	var err error
	globalCache.once(key).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.set(key, *v)
	})
	if err != nil {
		// allow a retry once the environment is fixed
		globalCache.drop(key)
		return err
	}

	cached, ok := globalCache.get(key)
	if !ok {
		return ErrConfigNotLoaded
	}
	return assign(v, cached)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value of T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	globalCache.drop(getTypeName[T]())
	return Load(v)
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. Without arguments the default .env file is
// loaded. Cached configuration values are not affected; use ResetCache or
// ForceReloadConfig to pick up the new values.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration value.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func assign[T any](v *T, cached any) error {
	typed, ok := cached.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = typed
	return nil
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
