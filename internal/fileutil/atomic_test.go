package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "export.json")
	payload := []byte(`{"hands":[]}`)

	if err := WriteFileAtomic(target, payload, 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("content = %q, want %q", data, payload)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("permissions = %o, want 644", info.Mode().Perm())
	}

	// No temp files may survive a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "export.json" {
			t.Errorf("leftover file %q", entry.Name())
		}
	}
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "export.json")
	if err := WriteFileAtomic(target, []byte("first"), 0o644); err != nil {
		t.Fatalf("initial write: %v", err)
	}
	if err := WriteFileAtomic(target, []byte("second"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic("/nonexistent/dir/export.json", []byte("data"), 0o644)
	if err == nil {
		t.Error("expected error for a missing directory")
	}
}
