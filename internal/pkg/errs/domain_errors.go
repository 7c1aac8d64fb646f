package errs

import "errors"

// Error kinds surfaced by the use case layer. Use cases attach exactly one of
// these with Mark; handlers translate them to transport status codes.
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrState          = errors.New("operation not allowed in current state")
	ErrAuthorization  = errors.New("not authorized")
	ErrTransientStore = errors.New("temporary store failure")
)

var (
	// Room errors
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnderMaintenance = errors.New("room is under maintenance")
	ErrCapacityExceeded     = errors.New("guest count exceeds room capacity")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("time slot is already reserved")
	ErrNotReservationOwner = errors.New("reservation belongs to another user")
	ErrPrivilegedRoleOnly  = errors.New("operation requires a privileged role")

	// Idempotency errors
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// KindOf returns the first kind err is marked with, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrState, ErrAuthorization, ErrTransientStore} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
