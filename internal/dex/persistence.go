package dex

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	packFile    = "pack.yaml"
	speciesFile = "species.yaml"
	movesFile   = "moves.yaml"
)

//go:embed data/*.yaml
var defaultData embed.FS

// DefaultPack returns the pack compiled into the binary.
func DefaultPack() (*Pack, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS reads pack.yaml, species.yaml and moves.yaml from fsys. pack.yaml is
// optional.
func LoadFS(fsys fs.FS) (*Pack, error) {
	var pack Pack

	packData, err := fs.ReadFile(fsys, packFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(packData, &pack); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", packFile, err)
		}
	}

	speciesData, err := fs.ReadFile(fsys, speciesFile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(speciesData, &pack.Species); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", speciesFile, err)
	}

	movesData, err := fs.ReadFile(fsys, movesFile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(movesData, &pack.Moves); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", movesFile, err)
	}

	return &pack, nil
}

// LoadPack reads the pack saved under dir/name.
func LoadPack(dir, name string) (*Pack, error) {
	pack, err := LoadFS(os.DirFS(filepath.Join(dir, name)))
	if err != nil {
		return nil, fmt.Errorf("loading pack %q: %w", name, err)
	}
	return pack, nil
}

// Save writes the pack to dir/name, one file per section.
func (p *Pack) Save(dir, name string) error {
	target := filepath.Join(dir, name)
	if err := os.MkdirAll(target, 0755); err != nil {
		return err
	}

	files := []struct {
		name string
		v    any
	}{
		{packFile, p},
		{speciesFile, p.Species},
		{movesFile, p.Moves},
	}
	for _, f := range files {
		data, err := yaml.Marshal(f.v)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(target, f.name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// ListPacks returns the names of the packs saved under dir.
func ListPacks(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var packs []string
	for _, entry := range entries {
		if entry.IsDir() {
			// species.yaml marks a usable pack
			speciesPath := filepath.Join(dir, entry.Name(), speciesFile)
			if _, err := os.Stat(speciesPath); err == nil {
				packs = append(packs, entry.Name())
			}
		}
	}
	return packs, nil
}
