package commands

import (
	"fmt"

	"agora-server/internal/domain/reservation"
	"agora-server/internal/pkg/errs"
)

// Failure sentinels shared across command services. Handlers translate
// these into wire error codes.
var (
	ErrForbidden               = errs.New("forbidden")
	ErrStatusInvalid           = errs.New("invalid status value")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ErrTransitionForbidden matches any TransitionError via errors.Is.
var ErrTransitionForbidden = errs.New("transition forbidden")

// TransitionError reports a rejected status transition together with the
// states involved, so clients can render what was attempted.
type TransitionError struct {
	From reservation.Status
	To   reservation.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition from %s to %s is not allowed", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransitionForbidden
}
