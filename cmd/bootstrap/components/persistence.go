package components

import (
	"venue-booking/internal/infra/readstore"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/infra/uow"
	"venue-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Hall
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HallViewQueries)),
		),
		fx.Annotate(
			readstore.NewHallReadStore,
			fx.As(new(queries.HallReadStore)),
		),
		// Slot
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Revenue
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
