package bootstrap

import (
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
		NewRefundPolicy,
		NewReservationCommandsConfig,
	),
)

// NewBookingLocation is the zone reservation dates and times are interpreted in.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}

func NewRefundPolicy(cfg config.Config) (reservation.RefundPolicy, error) {
	tiers, err := reservation.ParseRefundTiers(cfg.Booking.RefundTiers)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return reservation.DefaultRefundPolicy(), nil
	}
	return reservation.NewTieredRefundPolicy(tiers...)
}

func NewReservationCommandsConfig(cfg config.Config, loc *time.Location, policy reservation.RefundPolicy) commands.Config {
	return commands.Config{
		Location:       loc,
		RefundPolicy:   policy,
		IdempotencyTTL: cfg.Booking.IdempotencyTTL,
	}
}
