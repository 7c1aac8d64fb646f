package httperr

import (
	"net/http"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// publicErrors may be shown to clients verbatim; the first match wins.
var publicErrors = []error{
	errs.ErrRoomNotFound,
	errs.ErrReservationNotFound,
	errs.ErrReservationConflict,
	errs.ErrCapacityExceeded,
	errs.ErrRoomUnderMaintenance,
	errs.ErrNotReservationOwner,
	errs.ErrPrivilegedRoleOnly,
	errs.ErrIdempotencyKeyReused,
	reservation.ErrDateInPast,
	reservation.ErrStartTimeInPast,
	reservation.ErrBelowMinimumDuration,
	reservation.ErrInvalidGuestCount,
	reservation.ErrTerminalStatus,
	reservation.ErrAlreadyStarted,
	reservation.ErrIllegalTransition,
	reservation.ErrNoChanges,
	reservation.ErrInvalidStatus,
	reservation.ErrInvalidDate,
	reservation.ErrInvalidTimeOfDay,
	reservation.ErrInvalidTimeSlot,
	reservation.ErrNoteTooLong,
	reservation.ErrContactRequired,
}

var kindStatus = []struct {
	kind   error
	status int
	msg    string
}{
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrState, http.StatusConflict, "Operation not allowed in current state"},
	{errs.ErrAuthorization, http.StatusForbidden, "Forbidden"},
	{errs.ErrTransientStore, http.StatusServiceUnavailable, "Service temporarily unavailable, retry later"},
}

// StatusOf maps a use case error to its HTTP status and client message.
// Errors without a kind become 500 with a generic message.
func StatusOf(err error) (int, string) {
	for _, k := range kindStatus {
		if !errs.Is(err, k.kind) {
			continue
		}
		msg := k.msg
		if k.kind == errs.ErrTransientStore {
			return k.status, msg
		}
		for _, p := range publicErrors {
			if errs.Is(err, p) {
				msg = p.Error()
				break
			}
		}
		return k.status, msg
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError renders err using its use case error kind.
func AbortWithUseCaseError(c *gin.Context, err error, detail any) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, detail)
}
