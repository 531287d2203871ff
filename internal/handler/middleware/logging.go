package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"agora-server/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	tz := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(tz).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: tz}
}

func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// AccessLog emits one line per request after the handler chain finishes.
// 4xx logs as warn, 5xx as error.
func (l *Logger) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			attrs = append(attrs, slog.String("query", query))
		}
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("bytes", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(context.Background(), level, "request completed", attrs...)
	}
}

// AccessLog builds a self-contained access-log middleware for the router.
func AccessLog(cfg config.LogConfig) gin.HandlerFunc {
	return NewLogger(cfg).AccessLog()
}

func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(requestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
