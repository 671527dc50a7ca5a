package booking

import (
	"math/rand/v2"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// Picker chooses which eligible employee gets a new booking.
// Candidates are never empty when Pick is called.
type Picker interface {
	Pick(candidates []models.Employee) models.Employee
}

// RandomPicker spreads load uniformly across eligible employees.
type RandomPicker struct{}

func (RandomPicker) Pick(candidates []models.Employee) models.Employee {
	return candidates[rand.IntN(len(candidates))]
}

type PickerFunc func([]models.Employee) models.Employee

func (f PickerFunc) Pick(candidates []models.Employee) models.Employee {
	return f(candidates)
}
