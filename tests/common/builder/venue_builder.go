//go:build unit || e2e

package builder

import (
	"time"

	"agora-server/internal/domain/venue"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	City        string
	Category    string
	Address     string
	Description string
	Status      venue.Status
	CreatedAt   time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Blue Note",
		City:        "Tokyo",
		Category:    "live_house",
		Address:     "1-2-3 Minato",
		Description: "Intimate jazz club",
		Status:      venue.StatusApproved,
		CreatedAt:   time.Now(),
	}
}

func (b *VenueBuilder) WithOwner(ownerID uuid.UUID) *VenueBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *VenueBuilder) WithStatus(status venue.Status) *VenueBuilder {
	b.Status = status
	return b
}

func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.NewVenue(b.OwnerID, b.Name, b.City, b.Category, b.Address, b.Description)
}

func (b *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	return reqdto.CreateVenueRequest{
		Name:        b.Name,
		City:        b.City,
		Category:    b.Category,
		Address:     b.Address,
		Description: b.Description,
	}
}

func (b *VenueBuilder) BuildViewQuery() *queries.VenueView {
	return &queries.VenueView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		City:        b.City,
		Category:    b.Category,
		Address:     b.Address,
		Description: b.Description,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *VenueBuilder) BuildListItemQuery() *queries.VenueListItem {
	return &queries.VenueListItem{
		ID:        b.ID,
		Name:      b.Name,
		City:      b.City,
		Category:  b.Category,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}
