package mapdata

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LoadMap reads and validates a single YAML map file.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}

	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating map %s: %w", path, err)
	}

	slog.Info("map loaded", "path", path,
		"hexes", len(m.Hexes), "rivers", len(m.Rivers), "lakes", len(m.Lakes))
	return &m, nil
}

// LoadMapDir loads every .yaml region file in a directory concurrently and
// merges them in file-name order, so the merged result is deterministic
// regardless of which file finishes first.
func LoadMapDir(dir string) (*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading map dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no map files in %s", dir)
	}

	parts := make([]*Map, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			m, err := LoadMap(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			parts[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Map{}
	for _, p := range parts {
		merged.Hexes = append(merged.Hexes, p.Hexes...)
		merged.Rivers = append(merged.Rivers, p.Rivers...)
		merged.Lakes = append(merged.Lakes, p.Lakes...)
		merged.Crossings = append(merged.Crossings, p.Crossings...)
		merged.Passages = append(merged.Passages, p.Passages...)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("validating merged map %s: %w", dir, err)
	}

	slog.Info("map dir loaded", "dir", dir, "files", len(names), "hexes", len(merged.Hexes))
	return merged, nil
}
