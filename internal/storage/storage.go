// Package storage defines the persistence contract of the record store: a
// small key/value interface holding named records as opaque bytes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Names of the persisted records.
const (
	RecordItems  = "items"
	RecordGuests = "guests"
)

// Backend kinds selectable through configuration.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// ErrRecordNotFound is returned by Load when no record with that name has
// been saved yet.
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidRecordName is returned for names that are not lowercase
// letters, digits, '-' and '_' starting with a letter or digit.
var ErrInvalidRecordName = errors.New("invalid record name")

var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateName checks a record name. Every Backend calls it on Load and
// Save so all backends accept the same names.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRecordName, name)
	}
	return nil
}

// Backend persists named records.
type Backend interface {
	// Load returns the bytes last saved under name, or ErrRecordNotFound.
	// Names rejected by ValidateName fail with ErrInvalidRecordName.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the record stored under name.
	Save(ctx context.Context, name string, data []byte) error

	// Kind reports the backend kind for logging.
	Kind() string

	// Close releases the backend's resources.
	Close() error
}
