package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a Backend that keeps one <key>.json file per collection under a
// single directory.
type File struct {
	dir string
}

// NewFile returns a file backend rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the directory the backend writes into.
func (f *File) Dir() string { return f.dir }

func (f *File) path(key string) string { return filepath.Join(f.dir, key+".json") }

// Read returns the stored bytes for key, or ErrNotExist if the file was
// never written.
func (f *File) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", f.path(key), err)
	}
	return data, nil
}

// Write replaces the stored bytes for key. The write goes through a temp
// file and a rename so a crash mid-write never leaves a half-written
// collection behind.
func (f *File) Write(key string, data []byte) error {
	path := f.path(key)
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file for %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}
