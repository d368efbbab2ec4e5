package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access methods for overtime records.
// All methods are scoped to a user ID so one user can never see or
// touch another user's records.
type OvertimeRepository interface {
	// Create persists a new record. The (user, date) pair is unique:
	// inserting a second record for the same date fails with
	// ErrDuplicateDate, atomically with the insert itself.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID returns the record, ErrRecordNotFound if it does not
	// exist or belongs to another user.
	GetByID(ctx context.Context, userID, id string) (Record, error)

	// ListByUser returns the user's records newest date first,
	// optionally restricted to the inclusive [start, end] range.
	ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]Record, error)

	// ListYears returns the distinct years with records, ascending.
	ListYears(ctx context.Context, userID string) ([]int, error)

	// Delete removes the record permanently, ErrRecordNotFound under
	// the same ownership rule as GetByID.
	Delete(ctx context.Context, userID, id string) error
}
