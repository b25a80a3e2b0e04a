package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultPath returns the settings file in the per-user config directory
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "snakeflow", FileName), nil
}

// Load resolves settings in precedence order: defaults, settings file, env file and environment, flags
// Malformed environment values are logged and skipped; file and flag errors fail the load
func Load(f *Flags, lookup Lookup) (Settings, string, error) {
	path := f.ConfigPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Defaults(), "", err
		}
		path = p
	}

	s, err := LoadFile(path, Defaults())
	if err != nil {
		return s, path, err
	}

	if lookup == nil {
		vars, err := ReadEnvFile(f.EnvFile)
		if err != nil {
			return s, path, err
		}
		lookup = EnvLookup(vars)
	}
	s, err = ApplyEnv(s, lookup)
	if err != nil {
		log.Printf("ignoring environment override: %v", err)
	}

	s, err = f.Apply(s)
	return s, path, err
}
