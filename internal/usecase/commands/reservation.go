package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyStatusProcessing = "processing"
	idempotencyStatusCompleted  = "completed"
	createEndpoint              = "POST /reservations"
)

type CreateReservationInput struct {
	RoomID              uuid.UUID `json:"room_id"`
	Date                string    `json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	GuestCount          int       `json:"guest_count"`
	SpecialRequirements *string   `json:"special_requirements,omitempty"`
	ContactPhone        string    `json:"contact_phone"`
	ContactName         string    `json:"contact_name"`
}

// UpdateReservationInput carries optional fields; nil keeps the stored value.
type UpdateReservationInput struct {
	Date                *string
	StartTime           *string
	EndTime             *string
	GuestCount          *int
	SpecialRequirements *string
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

// CancellationResult reports the outcome of a cancellation. Reason is set when
// Success is false.
type CancellationResult struct {
	Success      bool   `json:"success"`
	RefundAmount int64  `json:"refund_amount_cents"`
	Reason       string `json:"reason,omitempty"`
}

// SlotCacheInvalidator drops cached slot tables touched by a write.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, roomID uuid.UUID, date reservation.Date) error
}

type Metrics interface {
	ReservationOutcome(operation, outcome string)
	RefundIssued(cents int64)
}

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status string) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*CancellationResult, error)
}

type Config struct {
	Location       *time.Location
	RefundPolicy   reservation.RefundPolicy
	IdempotencyTTL time.Duration
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	priceCalculator    reservation.PriceCalculator
	reservationQueries queries.ReservationQueries
	cache              SlotCacheInvalidator
	metrics            Metrics
	clock              clock.Clock
	loc                *time.Location
	refundPolicy       reservation.RefundPolicy
	idempotencyTTL     time.Duration
	logger             *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	cache SlotCacheInvalidator,
	metrics Metrics,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) ReservationCommands {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.RefundPolicy == nil {
		cfg.RefundPolicy = reservation.DefaultRefundPolicy()
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	return &reservationUseCaseImpl{
		uow:                uow,
		factory:            factory,
		priceCalculator:    factory.PriceCalculator,
		reservationQueries: reservationQueries,
		cache:              cache,
		metrics:            metrics,
		clock:              clk,
		loc:                cfg.Location,
		refundPolicy:       cfg.RefundPolicy,
		idempotencyTTL:     cfg.IdempotencyTTL,
		logger:             logger,
	}
}

func (r *reservationUseCaseImpl) Create(
	ctx context.Context,
	actor user.Actor,
	in CreateReservationInput,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	draft, err := r.buildDraft(actor, in)
	if err != nil {
		r.metrics.ReservationOutcome("create", "rejected")
		return nil, err
	}

	var (
		createdID  uuid.UUID
		replayedID *uuid.UUID
		created    *reservation.Reservation
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayedID = nil
		if idempotencyKey != nil {
			prior, ierr := r.claimIdempotencyKey(ctx, tx, *idempotencyKey, actor.UserID, in)
			if ierr != nil {
				return ierr
			}
			if prior != nil {
				replayedID = prior
				return nil
			}
		}

		res, cerr := r.admit(ctx, tx, in.RoomID, draft)
		if cerr != nil {
			return cerr
		}

		id, cerr := tx.Reservations().Create(ctx, tx.DB(), res)
		if cerr != nil {
			return shared.ClassifyStoreErr(cerr, errs.ErrRoomNotFound)
		}

		if cerr = r.enqueue(ctx, tx, EventReservationCreated, res, actor.UserID); cerr != nil {
			return cerr
		}

		if idempotencyKey != nil {
			if cerr = tx.Idempotency().Complete(ctx, tx.DB(), shared.IdempotencyResult{
				Key:           *idempotencyKey,
				UserID:        actor.UserID,
				ReservationID: id,
				ResponseHash:  hashID(id),
			}); cerr != nil {
				return errs.MarkAll(cerr, errs.ErrIdempotencyCheckFailed, errs.ErrTransientStore)
			}
		}
		createdID = id
		created = res
		return nil
	})
	if err != nil {
		r.metrics.ReservationOutcome("create", outcomeOf(err))
		return nil, err
	}

	if replayedID != nil {
		view, verr := r.reservationQueries.GetByIDSystem(ctx, *replayedID)
		if verr != nil {
			return nil, verr
		}
		r.metrics.ReservationOutcome("create", "replayed")
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	r.invalidate(ctx, created.RoomID(), created.Date())
	r.metrics.ReservationOutcome("create", "success")
	r.logger.InfoContext(ctx, "reservation created",
		"reservation_id", createdID,
		"room_id", created.RoomID(),
		"date", created.Date().String(),
		"slot", created.Slot().String())

	// Read-after-write: Get the complete reservation view from read store
	view, err := r.reservationQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

// buildDraft runs every check that needs no store access: required fields and
// the not-in-the-past rule.
func (r *reservationUseCaseImpl) buildDraft(actor user.Actor, in CreateReservationInput) (reservation.Draft, error) {
	if in.RoomID == uuid.Nil {
		return reservation.Draft{}, validationErr(ErrRoomIDRequired)
	}
	if actor.UserID == uuid.Nil {
		return reservation.Draft{}, validationErr(ErrUserIDRequired)
	}
	if in.GuestCount <= 0 {
		return reservation.Draft{}, validationErr(reservation.ErrInvalidGuestCount)
	}
	if strings.TrimSpace(in.ContactPhone) == "" || strings.TrimSpace(in.ContactName) == "" {
		return reservation.Draft{}, validationErr(ErrContactRequired)
	}

	date, err := reservation.ParseDate(in.Date)
	if err != nil {
		return reservation.Draft{}, validationErr(err)
	}
	slot, err := parseSlot(in.StartTime, in.EndTime)
	if err != nil {
		return reservation.Draft{}, err
	}
	note, err := parseNote(in.SpecialRequirements)
	if err != nil {
		return reservation.Draft{}, err
	}
	contact, err := reservation.NewContact(in.ContactName, in.ContactPhone)
	if err != nil {
		return reservation.Draft{}, validationErr(err)
	}

	if err := reservation.EnsureBookable(date, slot, r.clock.Now(), r.loc); err != nil {
		return reservation.Draft{}, validationErr(err)
	}

	return reservation.Draft{
		UserID:     actor.UserID,
		Date:       date,
		Slot:       slot,
		GuestCount: in.GuestCount,
		Note:       note,
		Contact:    contact,
	}, nil
}

// admit runs the store-backed admission checks in order: room, maintenance,
// capacity, availability. The factory then enforces the minimum duration.
func (r *reservationUseCaseImpl) admit(ctx context.Context, tx shared.Tx, roomID uuid.UUID, d reservation.Draft) (*reservation.Reservation, error) {
	rm, err := loadRoom(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}
	if rm.IsUnderMaintenance() {
		return nil, classifyDomainErr(reservation.ErrRoomUnderMaintenance)
	}
	if !rm.CanAccommodate(d.GuestCount) {
		return nil, classifyDomainErr(reservation.ErrCapacityExceeded)
	}

	if err := tx.Reservations().LockRoomDate(ctx, tx.DB(), roomID, d.Date); err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrRoomNotFound)
	}
	checker := reservation.NewAvailabilityChecker(shared.TxOverlapCounter(tx))
	ok, err := checker.IsAvailable(ctx, roomID, d.Date, d.Slot)
	if err != nil {
		return nil, r.classify(err)
	}
	if !ok {
		return nil, conflictErr()
	}

	res, err := r.factory.CreateReservation(rm, d)
	if err != nil {
		return nil, classifyDomainErr(err)
	}
	return res, nil
}

// claimIdempotencyKey returns the reservation a completed key already produced,
// or nil when this request owns the key.
func (r *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	in CreateReservationInput,
) (*uuid.UUID, error) {
	requestHash := calculateRequestHash(in)
	claim := shared.IdempotencyClaim{
		Key:         key,
		UserID:      userID,
		Endpoint:    createEndpoint,
		RequestHash: requestHash,
		ExpiresAt:   r.clock.Now().Add(r.idempotencyTTL),
	}

	if err := tx.Idempotency().Claim(ctx, tx.DB(), claim); err != nil {
		return nil, errs.MarkAll(err, errs.ErrIdempotencyCheckFailed, errs.ErrTransientStore)
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.MarkAll(err, errs.ErrIdempotencyCheckFailed, errs.ErrTransientStore)
	}

	if existing.RequestHash != requestHash {
		return nil, errs.MarkAll(errs.ErrIdempotencyKeyReused, errs.ErrConflict)
	}

	switch existing.Status {
	case idempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.Mark(ErrReplayMissingResult, errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultReservationID, nil
	case idempotencyStatusProcessing:
		// Keys are only ever committed as completed, so a processing row is ours.
		return nil, nil
	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), errs.ErrIdempotencyCheckFailed)
	}
}

func (r *reservationUseCaseImpl) Update(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	in UpdateReservationInput,
) (*queries.ReservationView, error) {
	changes, err := parseChanges(in)
	if err != nil {
		r.metrics.ReservationOutcome("update", "rejected")
		return nil, err
	}

	var before, after reservation.Date
	var roomID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, uerr := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if uerr != nil {
			return shared.ClassifyStoreErr(uerr, errs.ErrReservationNotFound)
		}
		if !actor.CanManage(res.UserID()) {
			return authorizationErr(errs.ErrNotReservationOwner)
		}

		now := r.clock.Now()
		plan, uerr := res.PlanAmendment(changes, now, r.loc)
		if uerr != nil {
			return classifyDomainErr(uerr)
		}

		if plan.ScheduleChanged {
			if uerr = tx.Reservations().LockRoomDate(ctx, tx.DB(), res.RoomID(), plan.Date); uerr != nil {
				return shared.ClassifyStoreErr(uerr, errs.ErrRoomNotFound)
			}
			checker := reservation.NewAvailabilityChecker(shared.TxOverlapCounter(tx))
			ok, cerr := checker.IsAvailableExcluding(ctx, res.RoomID(), plan.Date, plan.Slot, res.ID())
			if cerr != nil {
				return r.classify(cerr)
			}
			if !ok {
				return conflictErr()
			}
		}

		rm, uerr := loadRoom(ctx, tx, res.RoomID())
		if uerr != nil {
			return uerr
		}
		before = res.Date()
		if uerr = res.ApplyAmendment(plan, rm, r.priceCalculator, now); uerr != nil {
			return classifyDomainErr(uerr)
		}

		if uerr = tx.Reservations().SaveDetails(ctx, tx.DB(), res); uerr != nil {
			return shared.ClassifyStoreErr(uerr, errs.ErrReservationNotFound)
		}
		after = res.Date()
		roomID = res.RoomID()
		return r.enqueue(ctx, tx, EventReservationUpdated, res, actor.UserID)
	})
	if err != nil {
		r.metrics.ReservationOutcome("update", outcomeOf(err))
		return nil, err
	}

	r.invalidate(ctx, roomID, before)
	if !after.Equal(before) {
		r.invalidate(ctx, roomID, after)
	}
	r.metrics.ReservationOutcome("update", "success")
	r.logger.InfoContext(ctx, "reservation updated", "reservation_id", id, "actor_id", actor.UserID)

	return r.reservationQueries.GetByIDSystem(ctx, id)
}

func (r *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, eventType string, res *reservation.Reservation, actorID uuid.UUID) error {
	job, err := newNotificationJob(eventType, res, actorID, r.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
		return shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	return nil
}

func (r *reservationUseCaseImpl) invalidate(ctx context.Context, roomID uuid.UUID, date reservation.Date) {
	if err := r.cache.Invalidate(ctx, roomID, date); err != nil {
		r.logger.WarnContext(ctx, "failed to invalidate slot cache",
			"room_id", roomID,
			"date", date.String(),
			"error", err)
	}
}

func (r *reservationUseCaseImpl) classify(err error) error {
	if errs.KindOf(err) != nil {
		return err
	}
	if classified := classifyDomainErr(err); errs.KindOf(classified) != nil {
		return classified
	}
	return shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
}

func loadRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) (*room.Room, error) {
	snap, err := tx.Reads().RoomByID(ctx, roomID)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrRoomNotFound)
	}
	rm, err := room.NewRoom(snap.ID, snap.Name, snap.Capacity, snap.HourlyRateCents, room.Type(snap.RoomType), room.Status(snap.Status))
	if err != nil {
		return nil, errs.MarkAll(err, ErrUnexpectedStoredRoom, errs.ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func parseSlot(start, end string) (reservation.TimeSlot, error) {
	s, err := reservation.ParseTimeOfDay(start)
	if err != nil {
		return reservation.TimeSlot{}, validationErr(err)
	}
	e, err := reservation.ParseTimeOfDay(end)
	if err != nil {
		return reservation.TimeSlot{}, validationErr(err)
	}
	slot, err := reservation.NewTimeSlot(s, e)
	if err != nil {
		return reservation.TimeSlot{}, validationErr(err)
	}
	return slot, nil
}

func parseNote(s *string) (reservation.Note, error) {
	if s == nil {
		return reservation.Note{}, nil
	}
	note, err := reservation.NewNote(*s)
	if err != nil {
		return reservation.Note{}, validationErr(err)
	}
	return note, nil
}

func parseChanges(in UpdateReservationInput) (reservation.Changes, error) {
	var changes reservation.Changes
	if (in.StartTime == nil) != (in.EndTime == nil) {
		return changes, validationErr(ErrStartEndTogether)
	}
	if in.Date != nil {
		d, err := reservation.ParseDate(*in.Date)
		if err != nil {
			return changes, validationErr(err)
		}
		changes.Date = &d
	}
	if in.StartTime != nil {
		s, err := reservation.ParseTimeOfDay(*in.StartTime)
		if err != nil {
			return changes, validationErr(err)
		}
		e, err := reservation.ParseTimeOfDay(*in.EndTime)
		if err != nil {
			return changes, validationErr(err)
		}
		changes.Start, changes.End = &s, &e
	}
	if in.GuestCount != nil {
		if *in.GuestCount <= 0 {
			return changes, validationErr(reservation.ErrInvalidGuestCount)
		}
		changes.GuestCount = in.GuestCount
	}
	if in.SpecialRequirements != nil {
		note, err := parseNote(in.SpecialRequirements)
		if err != nil {
			return changes, err
		}
		changes.Note = &note
	}
	if changes.IsEmpty() {
		return changes, validationErr(reservation.ErrNoChanges)
	}
	return changes, nil
}

func outcomeOf(err error) string {
	switch errs.KindOf(err) {
	case errs.ErrConflict:
		return "conflict"
	case errs.ErrValidation:
		return "rejected"
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrState:
		return "illegal_state"
	case errs.ErrAuthorization:
		return "forbidden"
	case errs.ErrTransientStore:
		return "transient"
	default:
		return "error"
	}
}

func calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func hashID(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
