package bootstrap

import (
	"venue-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	ObservabilityModule,
	EventsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
