package bootstrap

import (
	"log/slog"

	"agora-server/internal/handler/middleware"
	"agora-server/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).Slog()
}
