package bootstrap

import (
	"context"

	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	publisher, cleanup, err := events.NewPublisher(cfg.Events)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
