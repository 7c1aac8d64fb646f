package reservation

import "time"

// PriceCalculator derives totalAmount from the booked interval and the room's hourly rate.
type PriceCalculator interface {
	CalculateTotal(hourlyRateCents int64, slot TimeSlot) Money
}

// DefaultPriceCalculator charges duration x hourly rate, pro rata per minute, rounded down to the cent.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) CalculateTotal(hourlyRateCents int64, slot TimeSlot) Money {
	if hourlyRateCents <= 0 {
		return Money{}
	}
	minutes := int64(slot.Duration() / time.Minute)
	return Money{cents: hourlyRateCents * minutes / 60}
}
