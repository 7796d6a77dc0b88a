package seating

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries the hall parameters for one allocation run.  HallCapacity
// must be even because seats are consumed in benches of two.
type Config struct {
	NumberOfHalls     int `json:"number_of_halls" validate:"required,gt=0"`
	HallCapacity      int `json:"hall_capacity" validate:"required,gt=0"`
	MaxSubjectPerHall int `json:"max_subject_per_hall" validate:"required,gt=0"`
}

var validate = validator.New()

// Validate checks the struct tags plus the bench-pairing evenness rule and
// returns a *ConfigurationError describing the first violation found.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			return &ConfigurationError{
				Reason: fmt.Sprintf("%s must be a positive integer", fe.Field()),
			}
		}
		return &ConfigurationError{Reason: err.Error()}
	}
	if c.HallCapacity%2 != 0 {
		return &ConfigurationError{Reason: "hall capacity must be even"}
	}
	return nil
}

// TotalCapacity is the number of seats available across all halls.
func (c Config) TotalCapacity() int {
	return c.NumberOfHalls * c.HallCapacity
}
