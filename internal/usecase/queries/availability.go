package queries

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStartEndTogether = errs.New("start_time and end_time must be given together")
	ErrInvalidRoomType  = errs.New("room_type must be standard or vip")
	ErrInvalidCapacity  = errs.New("capacity must be positive")
)

// RoomFilter narrows the room catalog. Zero values do not filter.
type RoomFilter struct {
	MinCapacity *int
	Features    string
	RoomType    string
}

// SearchCriteria is the input of SearchAvailableRooms. Date, Start and End
// default to today and the full opening window.
type SearchCriteria struct {
	Date   *reservation.Date
	Start  *reservation.TimeOfDay
	End    *reservation.TimeOfDay
	Filter RoomFilter
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Search(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
}

type BookingReadStore interface {
	ActiveBookings(ctx context.Context, roomIDs []uuid.UUID, date reservation.Date) ([]reservation.Booking, error)
}

// SlotStatusCache holds rendered slot tables. It only ever serves reads;
// admission control always consults the store.
type SlotStatusCache interface {
	Get(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]SlotStatusView, bool, error)
	Set(ctx context.Context, roomID uuid.UUID, date reservation.Date, slots []SlotStatusView) error
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, roomID uuid.UUID, date reservation.Date, start, end reservation.TimeOfDay) (bool, error)
	GetSlotStatus(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]SlotStatusView, error)
	GetAvailableRoomInfo(ctx context.Context, roomID uuid.UUID, date *reservation.Date) (*RoomAvailabilityView, error)
	SearchAvailableRooms(ctx context.Context, criteria SearchCriteria) ([]*RoomAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
	cache    SlotStatusCache
	catalog  reservation.SlotCatalog
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	rooms RoomReadStore,
	bookings BookingReadStore,
	cache SlotStatusCache,
	catalog reservation.SlotCatalog,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:    rooms,
		bookings: bookings,
		cache:    cache,
		catalog:  catalog,
		clock:    clk,
		loc:      loc,
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, date reservation.Date, start, end reservation.TimeOfDay) (bool, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrValidation)
	}
	if _, err := q.findRoom(ctx, roomID); err != nil {
		return false, err
	}

	checker, err := q.checkerFor(ctx, []uuid.UUID{roomID}, date)
	if err != nil {
		return false, err
	}
	return checker.IsAvailable(ctx, roomID, date, slot)
}

func (q *availabilityQueriesImpl) GetSlotStatus(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]SlotStatusView, error) {
	if _, err := q.findRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return q.slotStatus(ctx, roomID, date)
}

func (q *availabilityQueriesImpl) GetAvailableRoomInfo(ctx context.Context, roomID uuid.UUID, date *reservation.Date) (*RoomAvailabilityView, error) {
	room, err := q.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	day := q.today()
	if date != nil {
		day = *date
	}

	slots, err := q.slotStatus(ctx, roomID, day)
	if err != nil {
		return nil, err
	}
	return &RoomAvailabilityView{Room: *room, Date: day.String(), Slots: slots}, nil
}

func (q *availabilityQueriesImpl) SearchAvailableRooms(ctx context.Context, criteria SearchCriteria) ([]*RoomAvailabilityView, error) {
	window, day, err := q.resolveSearch(criteria)
	if err != nil {
		return nil, err
	}

	rooms, err := q.rooms.Search(ctx, criteria.Filter)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrRoomNotFound)
	}
	if len(rooms) == 0 {
		return []*RoomAvailabilityView{}, nil
	}

	ids := make([]uuid.UUID, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	checker, err := q.checkerFor(ctx, ids, day)
	if err != nil {
		return nil, err
	}

	result := make([]*RoomAvailabilityView, 0, len(rooms))
	for _, room := range rooms {
		ok, err := checker.IsAvailable(ctx, room.ID, day, window)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		statuses, err := q.catalog.Render(ctx, checker, room.ID, day)
		if err != nil {
			return nil, err
		}
		result = append(result, &RoomAvailabilityView{
			Room:  *room,
			Date:  day.String(),
			Slots: toSlotStatusViews(statuses),
		})
	}
	return result, nil
}

func (q *availabilityQueriesImpl) resolveSearch(criteria SearchCriteria) (reservation.TimeSlot, reservation.Date, error) {
	day := q.today()
	if criteria.Date != nil {
		day = *criteria.Date
	}

	if f := criteria.Filter; f.RoomType != "" && f.RoomType != "standard" && f.RoomType != "vip" {
		return reservation.TimeSlot{}, day, errs.Mark(ErrInvalidRoomType, errs.ErrValidation)
	}
	if c := criteria.Filter.MinCapacity; c != nil && *c <= 0 {
		return reservation.TimeSlot{}, day, errs.Mark(ErrInvalidCapacity, errs.ErrValidation)
	}

	if (criteria.Start == nil) != (criteria.End == nil) {
		return reservation.TimeSlot{}, day, errs.Mark(ErrStartEndTogether, errs.ErrValidation)
	}
	if criteria.Start == nil {
		return q.catalog.OpeningWindow(), day, nil
	}

	window, err := reservation.NewTimeSlot(*criteria.Start, *criteria.End)
	if err != nil {
		return reservation.TimeSlot{}, day, errs.Mark(err, errs.ErrValidation)
	}
	return window, day, nil
}

func (q *availabilityQueriesImpl) slotStatus(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]SlotStatusView, error) {
	if cached, ok, err := q.cache.Get(ctx, roomID, date); err != nil {
		q.logger.WarnContext(ctx, "slot status cache read failed", "room_id", roomID, "date", date.String(), "error", err)
	} else if ok {
		return cached, nil
	}

	checker, err := q.checkerFor(ctx, []uuid.UUID{roomID}, date)
	if err != nil {
		return nil, err
	}
	statuses, err := q.catalog.Render(ctx, checker, roomID, date)
	if err != nil {
		return nil, err
	}

	views := toSlotStatusViews(statuses)
	if err := q.cache.Set(ctx, roomID, date, views); err != nil {
		q.logger.WarnContext(ctx, "slot status cache write failed", "room_id", roomID, "date", date.String(), "error", err)
	}
	return views, nil
}

// checkerFor preloads the active bookings of rooms on date so that every
// overlap test is answered from memory.
func (q *availabilityQueriesImpl) checkerFor(ctx context.Context, roomIDs []uuid.UUID, date reservation.Date) (*reservation.AvailabilityChecker, error) {
	bookings, err := q.bookings.ActiveBookings(ctx, roomIDs, date)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	return reservation.NewAvailabilityChecker(reservation.NewOccupancy(bookings)), nil
}

func (q *availabilityQueriesImpl) findRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error) {
	room, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrRoomNotFound)
	}
	return room, nil
}

func (q *availabilityQueriesImpl) today() reservation.Date {
	return reservation.DateOf(clock.LocalNow(q.clock, q.loc))
}

func toSlotStatusViews(statuses []reservation.SlotStatus) []SlotStatusView {
	views := make([]SlotStatusView, len(statuses))
	for i, s := range statuses {
		views[i] = SlotStatusView{
			Label:     s.Slot.Label,
			StartTime: s.Slot.Time.Start().String(),
			EndTime:   s.Slot.Time.End().String(),
			Available: s.Available,
			Status:    string(s.Tag),
		}
	}
	return views
}
