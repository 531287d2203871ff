package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errors.New("venue name is required")
	ErrCityRequired     = errors.New("venue city is required")
	ErrCategoryRequired = errors.New("venue category is required")
)

type Venue struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	city        string
	category    string
	address     string
	description string
	status      Status
	approvedAt  *time.Time
	approvedBy  *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewVenue creates a listing in PENDING state; an administrator must
// approve it before it becomes bookable.
func NewVenue(ownerID uuid.UUID, name, city, category, address, description string) (*Venue, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, ErrNameRequired
	}
	if city == "" {
		return nil, ErrCityRequired
	}
	if category == "" {
		return nil, ErrCategoryRequired
	}

	return &Venue{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		city:        city,
		category:    category,
		address:     strings.TrimSpace(address),
		description: strings.TrimSpace(description),
		status:      StatusPending,
	}, nil
}

func ReconstructVenue(
	id, ownerID uuid.UUID,
	name, city, category, address, description string,
	status Status,
	approvedAt *time.Time,
	approvedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		city:        city,
		category:    category,
		address:     address,
		description: description,
		status:      status,
		approvedAt:  approvedAt,
		approvedBy:  approvedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Venue) IsBookable() bool {
	return v.status == StatusApproved
}

func (v *Venue) ID() uuid.UUID          { return v.id }
func (v *Venue) OwnerID() uuid.UUID     { return v.ownerID }
func (v *Venue) Name() string           { return v.name }
func (v *Venue) City() string           { return v.city }
func (v *Venue) Category() string       { return v.category }
func (v *Venue) Address() string        { return v.address }
func (v *Venue) Description() string    { return v.description }
func (v *Venue) Status() Status         { return v.status }
func (v *Venue) ApprovedAt() *time.Time { return v.approvedAt }
func (v *Venue) ApprovedBy() *uuid.UUID { return v.approvedBy }
func (v *Venue) CreatedAt() time.Time   { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time   { return v.updatedAt }
