package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type StatusTag string

const (
	TagAvailable StatusTag = "available"
	TagOccupied  StatusTag = "occupied"
)

var ErrInvalidSlotCatalog = errors.New("invalid slot catalog")

type Slot struct {
	Label string
	Time  TimeSlot
}

type SlotStatus struct {
	Slot      Slot
	Available bool
	Tag       StatusTag
}

// SlotCatalog is the ordered set of bookable intervals of a day.
type SlotCatalog struct {
	slots []Slot
}

// NewSlotCatalog requires slots in ascending, non-overlapping order.
func NewSlotCatalog(slots ...Slot) (SlotCatalog, error) {
	if len(slots) == 0 {
		return SlotCatalog{}, fmt.Errorf("%w: no slots", ErrInvalidSlotCatalog)
	}
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1].Time, slots[i].Time
		if cur.Start().Before(prev.End()) {
			return SlotCatalog{}, fmt.Errorf("%w: %s overlaps %s", ErrInvalidSlotCatalog, cur, prev)
		}
	}
	copied := make([]Slot, len(slots))
	copy(copied, slots)
	return SlotCatalog{slots: copied}, nil
}

// DefaultSlotCatalog has six two-hour slots separated by a 30 minute turnover.
func DefaultSlotCatalog() SlotCatalog {
	spans := [][4]int{
		{9, 0, 11, 0},
		{11, 30, 13, 30},
		{14, 0, 16, 0},
		{16, 30, 18, 30},
		{19, 0, 21, 0},
		{21, 30, 23, 30},
	}
	slots := make([]Slot, 0, len(spans))
	for _, s := range spans {
		ts, err := NewTimeSlot(MustTimeOfDay(s[0], s[1]), MustTimeOfDay(s[2], s[3]))
		if err != nil {
			panic(err)
		}
		slots = append(slots, Slot{Label: ts.String(), Time: ts})
	}
	catalog, err := NewSlotCatalog(slots...)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c SlotCatalog) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// OpeningWindow spans from the first slot's start to the last slot's end.
func (c SlotCatalog) OpeningWindow() TimeSlot {
	return TimeSlot{start: c.slots[0].Time.Start(), end: c.slots[len(c.slots)-1].Time.End()}
}

// Render asks the checker once per slot and keeps catalog order.
func (c SlotCatalog) Render(ctx context.Context, checker *AvailabilityChecker, roomID uuid.UUID, date Date) ([]SlotStatus, error) {
	statuses := make([]SlotStatus, 0, len(c.slots))
	for _, slot := range c.slots {
		ok, err := checker.IsAvailable(ctx, roomID, date, slot.Time)
		if err != nil {
			return nil, err
		}
		tag := TagOccupied
		if ok {
			tag = TagAvailable
		}
		statuses = append(statuses, SlotStatus{Slot: slot, Available: ok, Tag: tag})
	}
	return statuses, nil
}
