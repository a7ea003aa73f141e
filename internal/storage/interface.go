package storage

import "errors"

// ErrSlotEmpty is returned by Slot.Read when nothing has been written under the key.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a durable key-value location. Each key holds one opaque blob that is
// replaced wholesale on every write.
type Slot interface {
	// Lifecycle
	Init() error
	Close() error

	Read(key string) ([]byte, error)
	Write(key string, data []byte) error

	// Utils
	GetConfigPath() string
}
