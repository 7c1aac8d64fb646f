package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	dateLayout        = "2006-01-02"
	MaxNoteLength     = 200
	MinimumDuration   = 2 * time.Hour
	minutesPerDay     = 24 * 60
	timeOfDayLayout   = "15:04"
	timeOfDayLayoutSS = "15:04:05"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidTimeSlot  = errors.New("start time must be before end time")
	ErrNoteTooLong      = errors.New("special requirements too long")
	ErrNegativeMoney    = errors.New("money cannot be negative")
)

// Date is a calendar day without a zone. Instants are derived with At.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) String() string         { return d.t.Format(dateLayout) }
func (d Date) Time() time.Time        { return d.t }
func (d Date) AddDays(n int) Date     { return DateOf(d.t.AddDate(0, 0, n)) }
func (d Date) FirstOfMonth() Date     { return NewDate(d.t.Year(), d.t.Month(), 1) }

func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc).Add(tod.offset)
}

// TimeOfDay is an offset from midnight with minute resolution.
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 || hour*60+minute > minutesPerDay || (hour == 24 && minute != 0) {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return tod
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS. Seconds are truncated.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := timeOfDayLayout
	if strings.Count(s, ":") == 2 {
		layout = timeOfDayLayoutSS
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	d = d.Truncate(time.Minute)
	return NewTimeOfDay(int(d/time.Hour), int((d%time.Hour)/time.Minute))
}

// TimeOfDayIn returns the wall clock of t in loc, truncated to the minute.
func TimeOfDayIn(t time.Time, loc *time.Location) TimeOfDay {
	local := t.In(loc)
	return TimeOfDay{offset: time.Duration(local.Hour())*time.Hour + time.Duration(local.Minute())*time.Minute}
}

func (t TimeOfDay) Offset() time.Duration       { return t.offset }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.offset < other.offset }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.offset > other.offset }
func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.offset == other.offset }

func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return t.offset - other.offset
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t.offset/time.Hour), int((t.offset%time.Hour)/time.Minute))
}

// TimeSlot is the half-open interval [start, end) within one day.
type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() TimeOfDay          { return ts.start }
func (ts TimeSlot) End() TimeOfDay            { return ts.end }
func (ts TimeSlot) Duration() time.Duration   { return ts.end.Sub(ts.start) }
func (ts TimeSlot) Equal(other TimeSlot) bool { return ts.start.Equal(other.start) && ts.end.Equal(other.end) }

// Overlaps reports whether the intervals share any instant. Touching slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) Contains(other TimeSlot) bool {
	return !other.start.Before(ts.start) && !other.end.After(ts.end)
}

func (ts TimeSlot) MeetsMinimumDuration() bool {
	return ts.Duration() >= MinimumDuration
}

func (ts TimeSlot) String() string {
	return ts.start.String() + "-" + ts.end.String()
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Percent rounds down to the cent.
func (m Money) Percent(p int) Money {
	if p <= 0 {
		return Money{}
	}
	if p >= 100 {
		return m
	}
	return Money{cents: m.cents * int64(p) / 100}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Note holds the guest's special requirements.
type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

type Contact struct {
	name  string
	phone string
}

var ErrContactRequired = errors.New("contact name and phone are required")

func NewContact(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Contact{}, ErrContactRequired
	}
	return Contact{name: name, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
