package booking

import (
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, note string) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancel)
	b.NoteCancel = &note
	return nil
}

func Transition(b *models.Booking, to Status) error {
	if err := CanUpdateStatus(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(to)
	return nil
}
