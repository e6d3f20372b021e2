package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zenspend/internal/store"
)

// ErrNotFound is returned by a Backend when the named record has never
// been written.
var ErrNotFound = errors.New("settings record not found")

// Backend is durable key-value storage for serialized settings records.
// Which implementation backs it is decided once at startup, never at
// call sites.
type Backend interface {
	Load(name string) ([]byte, error)
	Store(name string, data []byte) error
}

// StoreBackend keeps settings records in the SQLite settings table.
// This is the fast path whenever the database is open.
type StoreBackend struct {
	db *store.Store
}

func NewStoreBackend(db *store.Store) *StoreBackend {
	return &StoreBackend{db: db}
}

func (b *StoreBackend) Load(name string) ([]byte, error) {
	value, err := b.db.GetSetting(name)
	if errors.Is(err, store.ErrNoSetting) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (b *StoreBackend) Store(name string, data []byte) error {
	return b.db.SetSetting(name, string(data))
}

// FileBackend keeps each record as a JSON file under dir. It is the
// generic fallback when no database is available.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, name+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	return data, nil
}

func (b *FileBackend) Store(name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, name+".json"), data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// SelectBackend picks the store-backed implementation when a database is
// available and falls back to plain files otherwise.
func SelectBackend(db *store.Store, fallbackDir string) Backend {
	if db != nil {
		return NewStoreBackend(db)
	}
	return NewFileBackend(fallbackDir)
}
