package keyring

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File is a Storage implementation backed by a single JSON file.
// The file is written with 0600 permissions because it holds credentials.
// All operations take an exclusive lock; the file is read and rewritten
// whole on every mutation, which is fine for the handful of entries the
// session layer stores.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed keyring at path. The parent directory is
// created if missing. The file itself is created lazily on first Set.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("keyring: file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Join(errors.New("keyring: failed to create directory"), err)
	}
	return &File{path: path}, nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		if !errors.Is(err, ErrCorruptStorage) {
			return err
		}
		// A corrupt file is unrecoverable; start over rather than fail writes.
		entries = make(map[string]string)
	}

	entries[key] = value
	return f.save(entries)
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		if errors.Is(err, ErrCorruptStorage) {
			return f.save(make(map[string]string))
		}
		return err
	}

	delete(entries, key)
	return f.save(entries)
}

func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrCorruptStorage, err)
	}
	return entries, nil
}

func (f *File) save(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}
