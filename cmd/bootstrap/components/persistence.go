package components

import (
	"agora-server/internal/infra/db"
	"agora-server/internal/infra/readstore"
	"agora-server/internal/infra/uow"
	"agora-server/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are not provided here: the unit of work constructs
// them per transaction. Only the read side and the UoW itself are shared.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
