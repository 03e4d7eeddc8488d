// Package category provides the ordered registry of classification labels.
//
// The position of a label in the Registry is the index of the matching
// component of the model's output vector, so the registry and a trained model
// are co-versioned artifacts: they are saved together and loaded verbatim.
package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the extension of per-category data files.
const Ext = ".txt"

var (
	// ErrEmptyRegistry is returned when a registry would have no labels.
	ErrEmptyRegistry = errors.New("category: empty registry")

	// ErrDuplicateCategory is returned when a label appears twice.
	ErrDuplicateCategory = errors.New("category: duplicate category")

	// ErrUnknownCategory is returned when looking up a label that is not registered.
	ErrUnknownCategory = errors.New("category: unknown category")
)

// Registry is an ordered list of unique labels.
type Registry struct {
	names []string
	index map[string]int
}

// New builds a Registry from names, preserving their order.
func New(names []string) (*Registry, error) {
	if len(names) == 0 {
		return nil, ErrEmptyRegistry
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
		}
		index[name] = i
	}

	return &Registry{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

// Len is the number of categories.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns a copy of the labels in registry order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Name returns the label at index i.
func (r *Registry) Name(i int) string {
	return r.names[i]
}

// Index returns the index of name.
func (r *Registry) Index(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return i, nil
}

// Equal reports whether both registries hold the same labels in the same order.
func (r *Registry) Equal(other *Registry) bool {
	if other == nil || len(r.names) != len(other.names) {
		return false
	}
	for i := range r.names {
		if r.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// Discover lists the category files in dir and returns their base names
// (without extension) in directory-listing order, which os.ReadDir defines
// as sorted by filename.
func Discover(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading category dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrEmptyRegistry, Ext, dir)
	}

	return New(names)
}

// Save writes the registry to path as a JSON array of labels.
func Save(r *Registry, path string) error {
	if r == nil || len(r.names) == 0 {
		return ErrEmptyRegistry
	}

	data, err := json.Marshal(r.names)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating category dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing categories %s: %w", path, err)
	}

	return nil
}

// Load reads a registry previously written by Save.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories %s: %w", path, err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing categories %s: %w", path, err)
	}

	r, err := New(names)
	if err != nil {
		return nil, fmt.Errorf("loading categories %s: %w", path, err)
	}
	return r, nil
}
