package components

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/metrics"
	"venue-booking/internal/usecase"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSettings,
	fx.Annotate(
		func(m *metrics.Metrics) *metrics.Metrics { return m },
		fx.As(new(commands.Recorder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewHallCommands,
		commands.NewSlotCommands,
		commands.NewRevenueCommands,
		commands.NewBookingCommands,
		commands.NewFeedbackCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHallQueries,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewRevenueQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewSettings turns the validated booking configuration into the policy the
// commands apply.
func NewSettings(cfg config.Config) (commands.Settings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return commands.Settings{}, err
	}
	b := cfg.Booking
	return commands.Settings{
		Policy: booking.Policy{
			Split: slot.FeeSplit{
				PlatformFeeRate:     b.PlatformFeeRate,
				OwnerCommissionRate: b.OwnerCommissionRate,
			},
			CancellationFloor:        hours(b.CancellationFloorHours),
			EarlyRefundThreshold:     hours(b.EarlyRefundThresholdHours),
			EarlyRefundFraction:      b.EarlyRefundFraction,
			LateRefundFraction:       b.LateRefundFraction,
			Location:                 loc,
			MaxRecurrenceOccurrences: b.MaxRecurrenceOccurrences,
		},
		IdempotencyTTL:    b.IdempotencyTTLDuration(),
		OutboxMaxAttempts: cfg.Worker.MaxAttempts,
	}, nil
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
