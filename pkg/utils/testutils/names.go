// Package testutils holds fixtures shared by charnn package tests.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
)

// Separable is a small corpus whose categories share no letters, so a
// few thousand iterations are enough to tell them apart.
func Separable() map[string][]string {
	return map[string][]string{
		"Abc": {"abc", "cab", "bca", "acab", "bacca", "cabba"},
		"Xyz": {"xyz", "zyx", "yzx", "xyzzy", "zyzx", "yxxz"},
	}
}

// WriteNames lays out corpus as <root>/names/<Category>.txt and returns root.
func WriteNames(root string, corpus map[string][]string) (string, error) {
	dir := filepath.Join(root, "names")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	for category, lines := range corpus {
		body := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(dir, category+".txt"), []byte(body), 0o600); err != nil {
			return "", err
		}
	}

	return root, nil
}
