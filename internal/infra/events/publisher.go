// Package events publishes domain events to a RabbitMQ topic exchange so
// downstream consumers (notifications, analytics) stay decoupled from the
// request path. Publishing is best effort; command handlers log failures
// and continue.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"agora-server/internal/pkg/config"
	"agora-server/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "agora.events"

// Routing keys follow "<aggregate>.<action>".
const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationAccepted  = "reservation.accepted"
	TopicReservationDeclined  = "reservation.declined"
	TopicReservationCheckedIn = "reservation.checked_in"
	TopicVenueSubmitted       = "venue.submitted"
	TopicVenueModerated       = "venue.moderated"
	TopicEventPublished       = "event.published"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type amqpPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher returns a no-op publisher when no broker URL is configured,
// so local development does not require RabbitMQ.
func NewPublisher(cfg config.EventsConfig) (Publisher, func(), error) {
	if cfg.AMQPURL == "" {
		slog.Info("AMQP URL not configured, events disabled")
		return NoopPublisher{}, func() {}, nil
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to AMQP broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open AMQP channel")
	}

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare exchange")
	}

	cleanup := func() {
		if err := ch.Close(); err != nil {
			slog.Warn("failed to close AMQP channel", "error", err.Error())
		}
		if err := conn.Close(); err != nil {
			slog.Warn("failed to close AMQP connection", "error", err.Error())
		}
	}

	return &amqpPublisher{conn: conn, ch: ch}, cleanup, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	err = p.ch.PublishWithContext(ctx, exchangeName, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
