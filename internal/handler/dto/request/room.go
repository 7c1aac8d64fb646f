package request

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/queries"
)

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required,isodate"`
	StartTime string `form:"start_time" binding:"required,hhmm"`
	EndTime   string `form:"end_time" binding:"required,hhmm"`
}

func (q AvailabilityQuery) Parse() (reservation.Date, reservation.TimeOfDay, reservation.TimeOfDay, error) {
	date, err := reservation.ParseDate(q.Date)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.TimeOfDay{}, err
	}
	start, err := reservation.ParseTimeOfDay(q.StartTime)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.TimeOfDay{}, err
	}
	end, err := reservation.ParseTimeOfDay(q.EndTime)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.TimeOfDay{}, err
	}
	return date, start, end, nil
}

type SlotStatusQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

func (q SlotStatusQuery) Parse() (reservation.Date, error) {
	return reservation.ParseDate(q.Date)
}

type RoomInfoQuery struct {
	Date string `form:"date" binding:"omitempty,isodate"`
}

// DatePtr returns nil when no date was given.
func (q RoomInfoQuery) DatePtr() (*reservation.Date, error) {
	return optionalDate(q.Date)
}

type SearchRoomsQuery struct {
	Date        string `form:"date" binding:"omitempty,isodate"`
	StartTime   string `form:"start_time" binding:"omitempty,hhmm"`
	EndTime     string `form:"end_time" binding:"omitempty,hhmm"`
	MinCapacity *int   `form:"capacity" binding:"omitempty,gte=1"`
	Features    string `form:"features" binding:"omitempty,max=100,safetext"`
	RoomType    string `form:"room_type" binding:"omitempty,oneof=standard vip"`
}

func (q SearchRoomsQuery) ToCriteria() (queries.SearchCriteria, error) {
	criteria := queries.SearchCriteria{
		Filter: queries.RoomFilter{
			MinCapacity: q.MinCapacity,
			Features:    q.Features,
			RoomType:    q.RoomType,
		},
	}
	date, err := optionalDate(q.Date)
	if err != nil {
		return queries.SearchCriteria{}, err
	}
	criteria.Date = date
	if criteria.Start, err = optionalTime(q.StartTime); err != nil {
		return queries.SearchCriteria{}, err
	}
	if criteria.End, err = optionalTime(q.EndTime); err != nil {
		return queries.SearchCriteria{}, err
	}
	return criteria, nil
}

func optionalDate(s string) (*reservation.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalTime(s string) (*reservation.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := reservation.ParseTimeOfDay(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
