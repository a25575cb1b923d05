package store

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestReadLinesMissingFileCreatesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", ".bash_history")

	lines, err := NewLineFile(path).ReadLines()
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("ReadLines() = %q, want empty", lines)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("missing file was not created: %v", err)
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"plain", "ls\ncd /tmp\nls\n", []string{"ls", "cd /tmp", "ls"}},
		{"no trailing newline", "ls\npwd", []string{"ls", "pwd"}},
		{"blank lines skipped", "ls\n\n\npwd\n", []string{"ls", "pwd"}},
		{"crlf", "ls\r\npwd\r\n", []string{"ls", "pwd"}},
		{"unicode", "echo héllo\n", []string{"echo héllo"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			got, err := NewLineFile(path).ReadLines()
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLinesStorageError(t *testing.T) {
	// A directory cannot be read as a line file
	dir := t.TempDir()

	_, err := NewLineFile(dir).ReadLines()
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("ReadLines() error = %v, want *StorageError", err)
	}
	if serr.Op != "read" {
		t.Errorf("StorageError.Op = %q, want %q", serr.Op, "read")
	}
}

func TestWriteLinesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites")
	f := NewLineFile(path)
	want := []string{"git status", "make -j4", "echo 'a b'"}

	if err := f.WriteLines(want); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "git status\nmake -j4\necho 'a b'\n" {
		t.Errorf("file content = %q", data)
	}

	got, err := f.ReadLines()
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}
}

func TestWriteLinesKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("ls\n"), 0o640); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if err := NewLineFile(path).WriteLines([]string{"pwd"}); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("permissions = %o, want 640", info.Mode().Perm())
	}
}

func TestWriteLinesUsesUniqueTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	stale := path + ".tmp"
	if err := os.WriteFile(stale, []byte("other writer\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	f := NewLineFile(path)
	for _, lines := range [][]string{{"ls"}, {"ls", "pwd"}} {
		if err := f.WriteLines(lines); err != nil {
			t.Fatalf("WriteLines(%q) error = %v", lines, err)
		}
	}

	if data, _ := os.ReadFile(stale); string(data) != "other writer\n" {
		t.Errorf("another writer's temp file was clobbered: %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if want := []string{"history", "history.tmp"}; !slices.Equal(names, want) {
		t.Errorf("directory = %q, want %q", names, want)
	}
}

func TestWriteLinesFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real_history")
	link := filepath.Join(dir, "history")
	if err := os.WriteFile(target, []byte("ls\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if err := NewLineFile(link).WriteLines([]string{"pwd"}); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat() error = %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("symlink was replaced by a regular file")
	}
	data, _ := os.ReadFile(target)
	if string(data) != "pwd\n" {
		t.Errorf("target content = %q, want %q", data, "pwd\n")
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	err := &StorageError{Op: "write", Path: "/x", Err: os.ErrPermission}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("StorageError should unwrap to its cause")
	}
	if err.Error() != "write /x: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".bash_history")
	other := filepath.Join(dir, "unrelated")
	if err := os.WriteFile(path, []byte("ls\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()
	if err := w.Add(path); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	w.Start()

	if err := os.WriteFile(other, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write unrelated file: %v", err)
	}
	if err := NewLineFile(path).WriteLines([]string{"ls", "pwd"}); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	select {
	case ev := <-w.Events:
		if ev.Path != path {
			t.Errorf("event for %q, want %q", ev.Path, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherStopTwice(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("first Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
