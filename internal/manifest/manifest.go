// Package manifest assembles distribution metadata from a build file.
//
// The build file is a yaml document split into named sections; every
// section's keys are flattened into one flat parameter set, later
// candidate files overriding earlier ones. Missing candidates are
// skipped, so a repo without a manifest still yields a usable zero
// Manifest.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const Filename = "build.yaml"

// Sections of the build file, merged in this order.
var sectionOrder = []string{
	"project",
	"personnel",
	"description",
	"build",
	"build-meta",
	"licensing",
}

type Manifest struct {
	Name        string
	Version     string
	Description string
	URL         string
	Author      string
	AuthorEmail string
	Maintainer  string
	License     string
	EntryPoints map[string]string
	Requires    []string
}

// CandidatePaths lists where a build file may live, nearest the root
// first: the root itself, its parent, and its grandparent.
func CandidatePaths(root string) []string {
	return []string{
		filepath.Join(root, Filename),
		filepath.Join(root, "..", Filename),
		filepath.Join(root, "..", "..", Filename),
	}
}

// Load reads every candidate path that exists and folds the section
// contents into a Manifest. A file that exists but cannot be parsed
// fails the load.
func Load(paths ...string) (*Manifest, error) {
	merged := map[string]any{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read manifest %s: %w", path, err)
		}

		var doc map[string]map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
		for _, section := range sectionOrder {
			for key, value := range doc[section] {
				merged[key] = value
			}
		}
	}

	return &Manifest{
		Name:        str(merged, "name"),
		Version:     str(merged, "version"),
		Description: str(merged, "description"),
		URL:         str(merged, "url"),
		Author:      str(merged, "author"),
		AuthorEmail: str(merged, "author_email"),
		Maintainer:  str(merged, "maintainer"),
		License:     str(merged, "license"),
		EntryPoints: strMap(merged, "entry_points"),
		Requires:    strList(merged, "install_requires"),
	}, nil
}

// MergeRequirements folds a requirements list file into the manifest,
// dropping blanks, comments, and duplicates. A missing file is not an
// error.
func (m *Manifest) MergeRequirements(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read requirements %s: %w", path, err)
	}

	seen := map[string]bool{}
	for _, r := range m.Requires {
		seen[r] = true
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || seen[line] {
			continue
		}
		seen[line] = true
		m.Requires = append(m.Requires, line)
	}
	return nil
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func strList(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func strMap(m map[string]any, key string) map[string]string {
	items, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	out := map[string]string{}
	for k, v := range items {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
