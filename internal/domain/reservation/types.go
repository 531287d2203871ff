package reservation

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

// Status is the closed reservation lifecycle enumeration. Values are
// always uppercase on the wire; input is normalized before comparison.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusDeclined  Status = "DECLINED"
	StatusCheckedIn Status = "CHECKED_IN"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCheckedIn:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCheckedIn
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransition is the single authority on legal status moves:
//
//	PENDING  -> ACCEPTED | DECLINED
//	ACCEPTED -> CHECKED_IN
//
// Everything else is rejected, including no-op (X, X) pairs and any
// move out of a terminal state.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusDeclined
	case StatusAccepted:
		return to == StatusCheckedIn
	default:
		return false
	}
}
