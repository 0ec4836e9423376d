package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// maxParallel bounds concurrent manifest parsing.
const maxParallel = 8

// LoadFS parses every *.yaml and *.yml file at the root of fsys, in file
// name order. Images resolve against fsys; dir, when not empty, is the same
// directory on disk and enables pdf slides.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) ([]*Manifest, error) {
	var names []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("list manifests: %w", err)
		}
		names = append(names, matches...)
	}
	sort.Strings(names)

	out := make([]*Manifest, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			m, err := Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path.Join(dir, name), err)
			}
			m.Source = name
			if dir != "" {
				m.Source = path.Join(dir, name)
			}
			m.Assets = fsys
			m.Dir = dir
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadDirs loads every directory concurrently and concatenates the results
// in directory order.
func LoadDirs(ctx context.Context, dirs []string) ([]*Manifest, error) {
	results := make([][]*Manifest, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("deck dir: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("deck dir %s: not a directory", dir)
			}
			ms, err := LoadFS(ctx, os.DirFS(dir), dir)
			if err != nil {
				return err
			}
			results[i] = ms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []*Manifest
	for _, ms := range results {
		out = append(out, ms...)
	}
	return out, nil
}

// LoadFile parses a single manifest from disk.
func LoadFile(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	dir := filepath.Dir(file)
	m.Source = file
	m.Assets = os.DirFS(dir)
	m.Dir = dir
	return m, nil
}
