package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `project:
  name: chell
  url: https://example.org/chell
personnel:
  author: someone
  author_email: someone@example.org
build:
  version: "0.3.1"
  install_requires:
    - readline
licensing:
  license: MIT
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFlattensSections(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, Filename, sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if m.Name != "chell" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Version != "0.3.1" {
		t.Errorf("Version = %q", m.Version)
	}
	if m.Author != "someone" || m.AuthorEmail != "someone@example.org" {
		t.Errorf("personnel section not flattened: %+v", m)
	}
	if m.License != "MIT" {
		t.Errorf("License = %q", m.License)
	}
	if len(m.Requires) != 1 || m.Requires[0] != "readline" {
		t.Errorf("Requires = %v", m.Requires)
	}
}

func TestLoadSkipsMissingCandidates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, Filename, sampleManifest)

	m, err := Load(filepath.Join(dir, "nope", Filename), path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Name != "chell" {
		t.Errorf("existing candidate not loaded, got %+v", m)
	}
}

func TestLoadLaterCandidateOverrides(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "one.yaml", "project:\n  name: first\n")
	second := writeFile(t, dir, "two.yaml", "project:\n  name: second\n")

	m, err := Load(first, second)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Name != "second" {
		t.Errorf("Name = %q, later file must override", m.Name)
	}
}

func TestLoadRejectsBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, Filename, "project: [unclosed")

	if _, err := Load(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestMergeRequirements(t *testing.T) {
	dir := t.TempDir()
	reqs := writeFile(t, dir, "requirements.txt", "readline\n\n# comment\nsqlite\nreadline\n")

	m := &Manifest{Requires: []string{"readline"}}
	if err := m.MergeRequirements(reqs); err != nil {
		t.Fatalf("MergeRequirements returned error: %v", err)
	}
	if len(m.Requires) != 2 || m.Requires[1] != "sqlite" {
		t.Errorf("Requires = %v", m.Requires)
	}
}

func TestMergeRequirementsMissingFile(t *testing.T) {
	m := &Manifest{}
	if err := m.MergeRequirements(filepath.Join(t.TempDir(), "requirements.txt")); err != nil {
		t.Errorf("missing requirements file must not fail: %v", err)
	}
}
