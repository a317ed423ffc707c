package fsstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadTextMissing(t *testing.T) {
	_, exists, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if exists {
		t.Fatalf("exists = true for missing file")
	}
}

func TestWriteTextAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.txt")
	if err := WriteTextAtomic(path, "hello", FileOptions{DirPerm: 0o700, FilePerm: 0o600}); err != nil {
		t.Fatalf("WriteTextAtomic() error = %v", err)
	}

	text, exists, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if !exists || text != "hello" {
		t.Fatalf("got (%q, %v), want (hello, true)", text, exists)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir entries = %d, want 1", len(entries))
	}
}

func TestAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	if err := AppendLine(path, "one", FileOptions{}); err != nil {
		t.Fatalf("AppendLine() error = %v", err)
	}
	if err := AppendLine(path, "two", FileOptions{}); err != nil {
		t.Fatalf("AppendLine() error = %v", err)
	}

	text, _, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if text != "one\ntwo\n" {
		t.Fatalf("content = %q", text)
	}
}
