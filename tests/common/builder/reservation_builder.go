//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// JST is the zone builders and tests interpret reservation dates in.
var JST = time.FixedZone("JST", 9*60*60)

// BaseNow is 2030-06-10 10:00 JST, a Monday morning.
var BaseNow = time.Date(2030, time.June, 10, 10, 0, 0, 0, JST)

type ReservationBuilder struct {
	ID                  uuid.UUID
	RoomID              uuid.UUID
	RoomName            string
	UserID              uuid.UUID
	Date                reservation.Date
	Start               reservation.TimeOfDay
	End                 reservation.TimeOfDay
	GuestCount          int
	TotalAmountCents    int64
	RefundAmountCents   *int64
	Status              reservation.Status
	SpecialRequirements string
	ContactName         string
	ContactPhone        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewReservationBuilder defaults to a pending 14:00-16:00 booking the day after BaseNow.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                  uuid.New(),
		RoomID:              uuid.New(),
		RoomName:            "Room A",
		UserID:              uuid.New(),
		Date:                reservation.DateOf(BaseNow).AddDays(1),
		Start:               reservation.MustTimeOfDay(14, 0),
		End:                 reservation.MustTimeOfDay(16, 0),
		GuestCount:          4,
		TotalAmountCents:    600000,
		Status:              reservation.StatusPending,
		SpecialRequirements: "Projector please",
		ContactName:         "Taro Yamada",
		ContactPhone:        "090-1234-5678",
		CreatedAt:           BaseNow,
		UpdatedAt:           BaseNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithSlot(startHour, startMinute, endHour, endMinute int) *ReservationBuilder {
	b.Start = reservation.MustTimeOfDay(startHour, startMinute)
	b.End = reservation.MustTimeOfDay(endHour, endMinute)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) Slot() reservation.TimeSlot {
	slot, err := reservation.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return slot
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	total, _ := reservation.NewMoney(b.TotalAmountCents)
	var refund reservation.Money
	if b.RefundAmountCents != nil {
		refund, _ = reservation.NewMoney(*b.RefundAmountCents)
	}
	note, _ := reservation.NewNote(b.SpecialRequirements)
	contact, _ := reservation.NewContact(b.ContactName, b.ContactPhone)
	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:           b.ID,
		RoomID:       b.RoomID,
		UserID:       b.UserID,
		Date:         b.Date,
		Slot:         b.Slot(),
		GuestCount:   b.GuestCount,
		TotalAmount:  total,
		RefundAmount: refund,
		Status:       b.Status,
		Note:         note,
		Contact:      contact,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	})
}

func (b *ReservationBuilder) BuildBooking() reservation.Booking {
	return reservation.Booking{
		ID:     b.ID,
		RoomID: b.RoomID,
		Date:   b.Date,
		Slot:   b.Slot(),
		Status: b.Status,
	}
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	refund := pgtype.Int8{Valid: false}
	if b.RefundAmountCents != nil {
		refund = pgtype.Int8{Int64: *b.RefundAmountCents, Valid: true}
	}
	return sqlc.Reservations{
		ID:                  b.ID,
		RoomID:              b.RoomID,
		UserID:              b.UserID,
		ReservationDate:     pgconv.DateToPgtype(b.Date.Time()),
		StartTime:           pgconv.ClockToPgtype(b.Start.Offset()),
		EndTime:             pgconv.ClockToPgtype(b.End.Offset()),
		GuestCount:          int32(b.GuestCount),
		TotalAmountCents:    b.TotalAmountCents,
		RefundAmountCents:   refund,
		Status:              b.Status.String(),
		SpecialRequirements: b.SpecialRequirements,
		ContactPhone:        b.ContactPhone,
		ContactName:         b.ContactName,
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  b.ID,
		RoomID:              b.RoomID,
		RoomName:            b.RoomName,
		RoomType:            "standard",
		UserID:              b.UserID,
		Date:                b.Date.String(),
		StartTime:           b.Start.String(),
		EndTime:             b.End.String(),
		GuestCount:          b.GuestCount,
		TotalAmountCents:    b.TotalAmountCents,
		RefundAmountCents:   b.RefundAmountCents,
		Status:              b.Status.String(),
		SpecialRequirements: b.SpecialRequirements,
		ContactPhone:        b.ContactPhone,
		ContactName:         b.ContactName,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	note := b.SpecialRequirements
	return commands.CreateReservationInput{
		RoomID:              b.RoomID,
		Date:                b.Date.String(),
		StartTime:           b.Start.String(),
		EndTime:             b.End.String(),
		GuestCount:          b.GuestCount,
		SpecialRequirements: &note,
		ContactPhone:        b.ContactPhone,
		ContactName:         b.ContactName,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	note := b.SpecialRequirements
	return reqdto.CreateReservationRequest{
		RoomID:              b.RoomID,
		Date:                b.Date.String(),
		StartTime:           b.Start.String(),
		EndTime:             b.End.String(),
		GuestCount:          b.GuestCount,
		SpecialRequirements: &note,
		ContactPhone:        b.ContactPhone,
		ContactName:         b.ContactName,
	}
}
