package shared

import (
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
)

// ClassifyStoreErr attaches a use case error kind to a repository failure.
// A not-found failure is replaced by notFound so callers never see driver text.
func ClassifyStoreErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(notFound, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.MarkAll(err, errs.ErrReservationConflict, errs.ErrConflict)
	case infra.IsKind(err, infra.KindTransient):
		return errs.Mark(err, errs.ErrTransientStore)
	case errs.KindOf(err) != nil:
		return err
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
