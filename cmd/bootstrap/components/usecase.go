package components

import (
	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/checkin"
	"agora-server/internal/pkg/clock"
	"agora-server/internal/pkg/config"
	"agora-server/internal/usecase"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

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
	func(cfg config.Config, clk clock.Clock) *checkin.Codec {
		return checkin.NewCodec(cfg.Checkin.Secret, clk)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVenueCommands,
		commands.NewReviewCommands,
		commands.NewEventCommands,
		func(
			uow shared.UnitOfWork,
			reservationQueries queries.ReservationQueries,
			codec *checkin.Codec,
			publisher events.Publisher,
			clk clock.Clock,
			cfg config.Config,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, reservationQueries, codec, publisher, clk, cfg.Checkin.DefaultTTL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVenueQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewEventQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
