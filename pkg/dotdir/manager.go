// Package dotdir resolves the .charnn/ directory holding persistent charnn
// configuration.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the charnn directory.
	dirName = ".charnn"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path to a .charnn/ directory.
// Order of precedence is as follows:
//  1. Provided override (created if missing)
//  2. Local ./.charnn/ dir
//  3. Home ~/.charnn/ dir
//
// If none apply, Target returns an empty string and callers fall back to
// defaults.
func (m *Manager) Target(overrideDir string) (string, error) {
	if overrideDir != "" {
		if err := os.MkdirAll(overrideDir, 0o755); err != nil {
			return "", fmt.Errorf("creating charnn directory %s: %w", overrideDir, err)
		}
		return filepath.Abs(overrideDir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	if local := filepath.Join(cwd, dirName); isDir(local) {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	if global := filepath.Join(home, dirName); isDir(global) {
		return global, nil
	}

	return "", nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// InitLocal creates ./.charnn/ in the current directory and returns its
// absolute path.
func (m *Manager) InitLocal() (string, error) {
	return m.Target(dirName)
}
