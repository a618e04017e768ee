// Package store persists resident records. Records are insert-only:
// there is no update or delete, so readers only ever race with the
// insertion of a new key.
package store

import (
	"context"
	"errors"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

var (
	// ErrDuplicate means the registration number is already taken.
	ErrDuplicate = errors.New("registration number already exists")
	// ErrNotFound means no record matches the requested key.
	ErrNotFound = errors.New("resident not found")
)

// ResidentStore is the persistence contract. Keys are matched exactly
// against the stored (uppercase) registration number; implementations
// uppercase the lookup key before matching.
type ResidentStore interface {
	// Insert persists a record atomically, returning ErrDuplicate when
	// the registration number is already present. Nothing is written on
	// failure.
	Insert(ctx context.Context, r models.Resident) error
	// Get returns the record for the given registration number or
	// ErrNotFound.
	Get(ctx context.Context, regNo string) (models.Resident, error)
	// ListAll returns the summary projection of every record, ordered
	// by last name then first name, ascending.
	ListAll(ctx context.Context) ([]models.ResidentSummary, error)
}
