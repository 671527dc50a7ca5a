package booking

import (
	"errors"

	"github.com/BruksfildServices01/slot-booking/internal/httperr"
)

// Stable codes returned to clients.
const (
	CodePermissionDenied    = "PERMISSION_DENIED"
	CodeServiceNotFound     = "SERVICE_NOT_FOUND"
	CodeVoucherNotFound     = "VOUCHER_NOT_FOUND"
	CodeBookingNotFound     = "BOOKING_NOT_FOUND"
	CodeNoEmployee          = "NO_EMPLOYEE"
	CodeCannotUpdateStatus  = "BOOKING_CANNOT_UPDATE_STATUS"
	CodeCannotDelete        = "BOOKING_CANNOT_DELETE"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidDateOrTime   = "INVALID_DATE_OR_TIME"
	CodeInvalidServiceHours = "INVALID_SERVICE_HOURS"
)

// Repository-level sentinels; usecases translate them into business errors.
var (
	ErrNotFound = errors.New("record not found")

	// ErrSlotTaken means the exclusivity guard rejected the insert: another
	// active booking already holds the employee at that start time.
	ErrSlotTaken = errors.New("employee already booked at this start time")

	// ErrStaleStatus means a conditional status write matched no row because
	// the booking left the expected status in the meantime.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

func ErrPermissionDenied() error { return httperr.ErrPermissionDenied(CodePermissionDenied) }

func ErrServiceNotFound() error { return httperr.ErrNotFound(CodeServiceNotFound) }

func ErrVoucherNotFound() error { return httperr.ErrNotFound(CodeVoucherNotFound) }

func ErrBookingNotFound() error { return httperr.ErrNotFound(CodeBookingNotFound) }

func ErrNoEmployee() error { return httperr.ErrNotFound(CodeNoEmployee) }
