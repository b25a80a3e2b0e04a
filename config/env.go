package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Lookup resolves an environment variable, os.LookupEnv in production
type Lookup func(key string) (string, bool)

// EnvName returns the environment variable overriding key
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// ReadEnvFile returns the variables of a dotenv file, a missing file yields an empty map
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}

// EnvLookup layers the process environment over file variables
func EnvLookup(file map[string]string) Lookup {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}

// ApplyEnv overlays SNAKEFLOW_* variables onto s
// All malformed variables are reported, valid ones are still applied
func ApplyEnv(s Settings, lookup Lookup) (Settings, error) {
	var errs []error
	for _, key := range Keys {
		v, ok := lookup(EnvName(key))
		if !ok {
			continue
		}
		if err := s.Set(key, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvName(key), err))
		}
	}
	return s.Clamped(), errors.Join(errs...)
}
