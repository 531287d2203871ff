package components

import (
	"time"

	"agora-server/internal/handler"
	"agora-server/internal/handler/api"
	"agora-server/internal/handler/middleware"
	"agora-server/internal/pkg/config"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewVenueHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewEventHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) (*api.AuthHandler, error) {
	accessTTL, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}

	refreshTTL, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}

	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, accessTTL, refreshTTL), nil
}

func NewRateLimiter(client *redis.Client, cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(client, cfg.Redis)
}

func NewHandlers(
	auth *api.AuthHandler,
	venue *api.VenueHandler,
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
	event *api.EventHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Venue:       venue,
		Reservation: reservation,
		Review:      review,
		Event:       event,
	}
}
