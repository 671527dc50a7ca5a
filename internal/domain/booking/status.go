package booking

import (
	"strings"

	"github.com/BruksfildServices01/slot-booking/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusCancel  Status = "CANCEL"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus accepts any casing of a known status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusSuccess, StatusCancel:
		return st, nil
	default:
		return "", httperr.ErrBusiness(CodeInvalidStatus)
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusCancel
}

// ===============================
// Transition rules
// ===============================

// CanUpdateStatus only lets PENDING bookings move; either terminal state is
// reachable from it.
func CanUpdateStatus(current Status) error {
	if current != StatusPending {
		return httperr.ErrPermissionDenied(CodeCannotUpdateStatus)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrPermissionDenied(CodeCannotDelete)
	}
	return nil
}
