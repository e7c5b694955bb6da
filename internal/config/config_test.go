package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesFileList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "riddle.yaml")
	if err := os.WriteFile(path, []byte("files:\n  - domain.rddl\n  - problem.rddl\n"), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"domain.rddl", "problem.rddl"}
	if len(m.Files) != len(want) {
		t.Fatalf("Files = %v, want %v", m.Files, want)
	}
	for i, f := range want {
		if m.Files[i] != f {
			t.Errorf("Files[%d] = %q, want %q", i, m.Files[i], f)
		}
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

func TestLoadIfExistsReturnsNilWithoutError(t *testing.T) {
	m, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if m != nil {
		t.Fatalf("expected a nil manifest, got %+v", m)
	}
}
