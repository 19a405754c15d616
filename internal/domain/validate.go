package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	plantValidator     *validator.Validate
	plantValidatorOnce sync.Once
)

func getPlantValidator() *validator.Validate {
	plantValidatorOnce.Do(func() {
		plantValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return plantValidator
}

// ValidatePlant checks a record before it crosses the store boundary.
// now bounds the care timestamps; pass the zero time to skip that check.
func ValidatePlant(p *PlantRecord, now time.Time) error {
	if p == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidPlant)
	}
	if err := getPlantValidator().Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlant, err)
	}
	if !now.IsZero() {
		if p.LastWatered.After(now) || p.LastFed.After(now) || p.PlantedAt.After(now) {
			return fmt.Errorf("%w: timestamp in the future", ErrInvalidPlant)
		}
	}
	return nil
}
