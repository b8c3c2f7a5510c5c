package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidTarget is returned when Load receives something other than a non-nil struct pointer.
var ErrInvalidTarget = errors.New("config: target must be a non-nil pointer to a struct")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> reflect.Value (struct copy)
	loadMu     sync.Mutex
)

// Load populates target from the environment, loading .env on first use.
// The result is cached per type: later calls for the same type copy the
// cached value without re-reading the environment.
func Load(target any) error {
	typ, err := structType(target)
	if err != nil {
		return err
	}

	if cached, ok := cache.Load(typ); ok {
		reflect.ValueOf(target).Elem().Set(cached.(reflect.Value))
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		reflect.ValueOf(target).Elem().Set(cached.(reflect.Value))
		return nil
	}

	if err := Parse(target); err != nil {
		return err
	}

	snapshot := reflect.New(typ).Elem()
	snapshot.Set(reflect.ValueOf(target).Elem())
	cache.Store(typ, snapshot)
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad(target any) {
	if err := Load(target); err != nil {
		panic(err)
	}
}

// Parse populates target from the environment without caching.
// A .env file in the working directory is loaded once per process; variables
// already set in the environment take precedence.
func Parse(target any) error {
	if _, err := structType(target); err != nil {
		return err
	}

	dotenvOnce.Do(func() {
		// Missing .env is the common case outside development.
		_ = godotenv.Load()
	})

	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

func structType(target any) (reflect.Type, error) {
	if target == nil {
		return nil, ErrInvalidTarget
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, ErrInvalidTarget
	}
	return rv.Elem().Type(), nil
}
