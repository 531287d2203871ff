package venue

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid venue status")

// Status is the moderation state of a listing. Only APPROVED venues are
// publicly browsable and bookable.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusSuspended Status = "SUSPENDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSuspended:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
