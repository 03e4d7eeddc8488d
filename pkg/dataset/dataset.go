// Package dataset loads the per-category collections of training lines and
// draws random examples from them.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
)

// NamesDir is the subdirectory of the data root holding one file per category.
const NamesDir = "names"

// ErrEmptyCategory is returned when a category has no usable lines.
var ErrEmptyCategory = errors.New("dataset: category has no lines")

// Example is a single (category, line) pair.
type Example struct {
	Category string
	Index    int
	Line     string
}

// Dataset maps each category, in registry order, to its normalized lines.
// It is read-only once built.
type Dataset struct {
	registry *category.Registry
	lines    [][]string
}

// New builds a Dataset from lines given per category, in registry order.
func New(registry *category.Registry, lines map[string][]string) (*Dataset, error) {
	d := &Dataset{
		registry: registry,
		lines:    make([][]string, registry.Len()),
	}

	for i, name := range registry.Names() {
		ls := lines[name]
		if len(ls) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, name)
		}
		d.lines[i] = append([]string(nil), ls...)
	}

	return d, nil
}

// Load discovers the categories under <root>/names and reads every line of
// each category file, normalized against a. Lines that are empty after
// normalization are skipped.
func Load(root string, a *alphabet.Alphabet) (*Dataset, error) {
	dir := filepath.Join(root, NamesDir)

	registry, err := category.Discover(dir)
	if err != nil {
		return nil, err
	}

	lines := make(map[string][]string, registry.Len())
	for _, name := range registry.Names() {
		path := filepath.Join(dir, name+category.Ext)
		ls, err := readLines(path, a)
		if err != nil {
			return nil, err
		}
		lines[name] = ls
	}

	return New(registry, lines)
}

func readLines(path string, a *alphabet.Alphabet) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := a.Normalize(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return out, nil
}

// Registry returns the category registry, in discovery order.
func (d *Dataset) Registry() *category.Registry {
	return d.registry
}

// Lines returns the lines of the category at index i.
func (d *Dataset) Lines(i int) []string {
	return d.lines[i]
}

// Size is the total number of lines across all categories.
func (d *Dataset) Size() int {
	n := 0
	for _, ls := range d.lines {
		n += len(ls)
	}
	return n
}

// Sample draws a category uniformly at random and then a line uniformly at
// random from that category. Sampling is with replacement.
func (d *Dataset) Sample(rng *rand.Rand) Example {
	i := rng.IntN(len(d.lines))
	ls := d.lines[i]
	return Example{
		Category: d.registry.Name(i),
		Index:    i,
		Line:     ls[rng.IntN(len(ls))],
	}
}
