package vocab

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Mode decides how a vocabulary file combines with the builtin lists.
type Mode string

const (
	// ModeExtend appends the file's words to the builtin categories.
	ModeExtend Mode = "extend"
	// ModeReplace swaps out every category the file names.
	ModeReplace Mode = "replace"
)

// File is the YAML layout of a vocabulary override:
//
//	mode: extend
//	categories:
//	  skills: [pottery, gardening]
//	  emotions: [wistful]
type File struct {
	Mode       Mode                `yaml:"mode"`
	Categories map[string][]string `yaml:"categories"`
}

// LoadFile reads a YAML vocabulary file and applies it on top of the builtin store.
// An empty path returns the builtin store.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read vocabulary %s", path)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "vocabulary %s", path)
	}
	return store, nil
}

// Parse decodes a vocabulary file and applies it on top of the builtin store.
func Parse(data []byte) (*Store, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return f.Apply(builtinSets())
}

// Apply merges the file into base and builds a Store.
func (f File) Apply(base map[Category][]string) (*Store, error) {
	mode := Mode(strings.ToLower(string(f.Mode)))
	if mode == "" {
		mode = ModeExtend
	}
	if mode != ModeExtend && mode != ModeReplace {
		return nil, errors.WithHint(
			errors.Newf("unknown vocabulary mode %q", f.Mode),
			"use mode: extend or mode: replace",
		)
	}

	sets := make(map[Category][]string, len(base))
	for c, words := range base {
		sets[c] = append([]string(nil), words...)
	}
	for name, words := range f.Categories {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if mode == ModeReplace {
			sets[c] = append([]string(nil), words...)
			continue
		}
		sets[c] = append(sets[c], words...)
	}
	return New(sets)
}
