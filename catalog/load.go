package catalog

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
)

// DefaultGlob selects every YAML file below the root.
const DefaultGlob = "**/*.{yaml,yml}"

// LoadFS parses and merges every file of fsys matching glob, in lexical path
// order. A name defined in two files is ErrDuplicate; no match is ErrNoFiles.
// The result's Digest fingerprints the matched paths and their content.
func LoadFS(fsys fs.FS, glob string) (*Definitions, error) {
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("LoadFS(%q): %w", glob, doublestar.ErrBadPattern)
	}
	paths, err := doublestar.Glob(fsys, glob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("LoadFS(%q): %w", glob, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("LoadFS(%q): %w", glob, ErrNoFiles)
	}
	sort.Strings(paths)

	merged := &Definitions{
		Alphabets: make(map[string]AlphabetDef),
		Fields:    make(map[string]FieldDef),
	}
	digest := xxhash.New()
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("LoadFS: %w", err)
		}
		_, _ = digest.WriteString(p)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.Write(data)
		defs, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("LoadFS: %s: %w", p, err)
		}
		if err := merged.Merge(defs); err != nil {
			return nil, fmt.Errorf("LoadFS: %s: %w", p, err)
		}
	}
	merged.Digest = digest.Sum64()

	return merged, nil
}
