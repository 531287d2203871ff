package commands

import (
	"context"

	"agora-server/internal/domain/review"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotEligible = errs.New("no checked-in visit at this venue")
	ErrDuplicateReview   = errs.New("review already exists for this venue")
)

type ReviewCommands interface {
	// Create requires a completed visit: only guests with a CHECKED_IN
	// reservation at the venue may review it.
	Create(ctx context.Context, userID, venueID uuid.UUID, req reqdto.CreateReviewRequest) (*queries.ReviewView, error)
}

type reviewCommandsImpl struct {
	uow        shared.UnitOfWork
	reviewRepo queries.ReviewViewRepo
}

func NewReviewCommands(uow shared.UnitOfWork, reviewRepo queries.ReviewViewRepo) ReviewCommands {
	return &reviewCommandsImpl{
		uow:        uow,
		reviewRepo: reviewRepo,
	}
}

func (r *reviewCommandsImpl) Create(ctx context.Context, userID, venueID uuid.UUID, req reqdto.CreateReviewRequest) (*queries.ReviewView, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := r.uow.CommandReads().VenueByID(ctx, venueID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := review.NewReview(userID, venueID, rating, comment)

	var reviewID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Eligibility is checked inside the transaction so a concurrent
		// decline cannot slip a review past the gate.
		visited, readErr := tx.Reads().HasCheckedInReservation(ctx, userID, venueID)
		if readErr != nil {
			return readErr
		}
		if !visited {
			return ErrReviewNotEligible
		}

		id, createErr := tx.Reviews().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		reviewID = id
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrReviewNotEligible):
			return nil, ErrReviewNotEligible
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateReview
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return r.reviewRepo.FindByID(ctx, reviewID)
}
