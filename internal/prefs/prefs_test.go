package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsLight(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if p := Load(""); p.Dark {
		t.Fatalf("Dark = true, want false")
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "artex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("dark = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(""); !p.Dark {
		t.Fatalf("Dark = false, want true")
	}
	if p := Load("~/.config/artex/prefs.toml"); !p.Dark {
		t.Fatalf("Dark = false via ~ path, want true")
	}
}

func TestSave_CreatesDirsAndReplaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "prefs.toml")

	if err := Save(path, Prefs{Dark: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !Load(path).Dark {
		t.Fatalf("Dark = false after saving true")
	}

	if err := Save(path, Prefs{}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if Load(path).Dark {
		t.Fatalf("Dark = true after saving false")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		t.Fatalf("dir holds %d entries, want only prefs.toml", len(entries))
	}
}

func TestLoad_DegradesGracefully(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid toml", "not valid toml {{{\n"},
		{"wrong type", "dark = \"yes\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := Load(writePrefs(t, tt.body)); p.Dark {
				t.Fatalf("Dark = true, want false")
			}
		})
	}
}

func TestLoad_DirectoryIsLight(t *testing.T) {
	if p := Load(t.TempDir()); p.Dark {
		t.Fatalf("Dark = true for a directory path, want false")
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(); got != "~/.config/artex/prefs.toml" {
		t.Fatalf("DefaultPath = %q", got)
	}
}
