package storage

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot stores each key as a flat file managed by diskv, with an
// in-memory read cache.
type DiskvSlot struct {
	dir string
	d   *diskv.Diskv
}

func NewDiskvSlot(dir string) *DiskvSlot {
	return &DiskvSlot{
		dir: dir,
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

func (s *DiskvSlot) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *DiskvSlot) Close() error {
	return nil
}

func (s *DiskvSlot) Read(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, ErrSlotEmpty
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}
	return data, nil
}

func (s *DiskvSlot) Write(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

func (s *DiskvSlot) GetConfigPath() string {
	return s.dir
}
