package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single history line; multi-line heredocs can be long
const maxLineSize = 1 << 20

// StorageError is returned when a store cannot be read or written for any
// reason other than the file not existing yet.
type StorageError struct {
	Op   string // "read", "write" or "create"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// LineFile is a newline-delimited text file, one entry per line
type LineFile struct {
	Path string
}

// NewLineFile returns a store backed by path
func NewLineFile(path string) *LineFile {
	return &LineFile{Path: filepath.Clean(path)}
}

// ReadLines returns every non-empty line in file order. A missing file is
// created (with its parent directories) and reads as empty.
func (f *LineFile) ReadLines() ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, f.create()
		}
		return nil, &StorageError{Op: "read", Path: f.Path, Err: err}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &StorageError{Op: "read", Path: f.Path, Err: err}
	}
	return lines, nil
}

// WriteLines replaces the file contents with lines. The write goes through a
// temporary file and a rename so a crash never leaves a truncated history.
func (f *LineFile) WriteLines(lines []string) error {
	target := f.Path
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &StorageError{Op: "write", Path: f.Path, Err: err}
	}

	perm := fs.FileMode(0o600)
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	// unique name so concurrent writers never share a temp file
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return &StorageError{Op: "write", Path: f.Path, Err: err}
	}
	if err := writeTemp(tmp, b.String(), perm); err != nil {
		_ = os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: f.Path, Err: err}
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: f.Path, Err: err}
	}
	return nil
}

// writeTemp fills and closes tmp, then gives it the target's permissions
func writeTemp(tmp *os.File, content string, perm fs.FileMode) error {
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Chmod(tmp.Name(), perm)
}

// create makes an empty file and its parent directories
func (f *LineFile) create() error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return &StorageError{Op: "create", Path: f.Path, Err: err}
	}
	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &StorageError{Op: "create", Path: f.Path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &StorageError{Op: "create", Path: f.Path, Err: err}
	}
	return nil
}
