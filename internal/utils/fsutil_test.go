package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestUnixNow_CloseToWallClock(t *testing.T) {
	before := time.Now().Unix()
	got := UnixNow()
	after := time.Now().Unix()

	if got < before || got > after {
		t.Errorf("expected UnixNow in [%d, %d], got %d", before, after, got)
	}
}

func TestFileMtime_ReturnsModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	stamp := time.Unix(1700000000, 0)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err := FileMtime(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != 1700000000 {
		t.Errorf("expected mtime 1700000000, got %d", got)
	}
}

func TestFileMtime_MissingFile(t *testing.T) {
	got, err := FileMtime(filepath.Join(t.TempDir(), "missing"))

	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if got != 0 {
		t.Errorf("expected zero mtime on error, got %d", got)
	}
}
