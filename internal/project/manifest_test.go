package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "snirk.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"

[check]
max-diagnostics = 25
jobs = 2

[lints]
unused-variable = false
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Package.Name)
	}
	if m.Check.MaxDiagnostics != 25 || m.Check.Jobs != 2 {
		t.Errorf("check = %+v", m.Check)
	}
	if m.Lints.UnusedVariable {
		t.Error("unused-variable must be off")
	}
	if !m.Lints.UnusedMutable {
		t.Error("unused-mutable must keep its default")
	}
}

func TestLoadManifestUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[check]\nmax-diags = 1\n")
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"up\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, path, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path == "" || m.Package.Name != "up" {
		t.Errorf("Discover = %q / %+v", path, m.Package)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	dir := t.TempDir()
	m, path, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("expected no manifest path, got %q", path)
	}
	if m.Check.MaxDiagnostics != 100 || !m.Lints.UnusedVariable {
		t.Errorf("defaults = %+v", m)
	}
}
