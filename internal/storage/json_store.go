package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot keeps every key in its own JSON file inside a directory.
type FileSlot struct {
	dir string
}

func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{
		dir: dir,
	}
}

func (s *FileSlot) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *FileSlot) Close() error {
	return nil
}

func (s *FileSlot) Read(key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}
	return data, nil
}

// Write replaces the key's file atomically: a crash mid-write leaves the
// previous contents in place.
func (s *FileSlot) Write(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to set slot permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace slot: %w", err)
	}
	return nil
}

func (s *FileSlot) GetConfigPath() string {
	return s.dir
}

func (s *FileSlot) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
