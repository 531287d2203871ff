package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"agora-server/internal/pkg/clock"
)

var (
	ErrTitleRequired = errors.New("event title is required")
	ErrStartsInPast  = errors.New("event cannot start in the past")
)

type Event struct {
	id          uuid.UUID
	venueID     uuid.UUID
	title       string
	description string
	startsAt    time.Time
	createdAt   time.Time
}

func NewEvent(clk clock.Clock, venueID uuid.UUID, title, description string, startsAt time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	now := clk.Now()
	if startsAt.Before(now) {
		return nil, ErrStartsInPast
	}
	return &Event{
		id:          uuid.New(),
		venueID:     venueID,
		title:       title,
		description: strings.TrimSpace(description),
		startsAt:    startsAt,
		createdAt:   now,
	}, nil
}

func ReconstructEvent(id, venueID uuid.UUID, title, description string, startsAt, createdAt time.Time) *Event {
	return &Event{
		id:          id,
		venueID:     venueID,
		title:       title,
		description: description,
		startsAt:    startsAt,
		createdAt:   createdAt,
	}
}

func (e *Event) ID() uuid.UUID       { return e.id }
func (e *Event) VenueID() uuid.UUID  { return e.venueID }
func (e *Event) Title() string       { return e.title }
func (e *Event) Description() string { return e.description }
func (e *Event) StartsAt() time.Time { return e.startsAt }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
