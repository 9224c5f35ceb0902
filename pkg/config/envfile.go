package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultEnvFile is looked up when no env file name is given.
const DefaultEnvFile = ".env"

// FindEnvFile returns the path of the regular file called name in dir or the
// closest of its ancestors. An empty name means DefaultEnvFile and an empty
// dir means the working directory. The error matches os.ErrNotExist when no
// directory up to the root holds the file.
func FindEnvFile(name, dir string) (string, error) {
	if name == "" {
		name = DefaultEnvFile
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("env file %q: %w", name, os.ErrNotExist)
		}
		dir = parent
	}
}
