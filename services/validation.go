package services

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateDraft checks the whole draft against the combined schema of all
// wizard steps. Unlike the step-local checks it reports every field error
// at once; submission fails closed on the first non-nil result.
func ValidateDraft(d Draft) error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name,
			validation.Required.Error("The name of the preventive cannot be empty"),
		),
		validation.Field(&d.CheckIn,
			validation.Required.Error("Please select the check-in"),
		),
		validation.Field(&d.CheckOut,
			validation.Required.Error("Please select the check-out"),
			validation.By(notBefore(d.CheckIn)),
		),
		validation.Field(&d.NumberOfGuests,
			validation.Required.Error("Please select the number of guests"),
			validation.Min(MinNumberOfGuests),
			validation.Max(MaxNumberOfGuests),
		),
		validation.Field(&d.DoubleRooms,
			validation.Min(0),
			validation.Max(MaxDoubleRooms),
		),
		validation.Field(&d.SingleRooms,
			validation.Min(0),
			validation.Max(MaxSingleRooms),
		),
		validation.Field(&d.FreeQuote,
			validation.Min(0),
			validation.Max(MaxFreeQuote),
			validation.By(lessThanGuests(d.NumberOfGuests)),
		),
		validation.Field(&d.NumberOfVans,
			validation.Min(0),
			validation.Max(MaxNumberOfVans),
		),
	)
}

// ValidationMessages flattens a validation error into field -> message,
// ready for inline display. Non-validation errors map to a single generic
// entry so no failure path stays silent.
func ValidationMessages(err error) map[string]string {
	if err == nil {
		return nil
	}

	msgs := make(map[string]string)
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for field, ferr := range fieldErrs {
			msgs[field] = ferr.Error()
		}
		return msgs
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		msgs[fieldErr.Field] = fieldErr.Message
		return msgs
	}

	msgs["form"] = err.Error()
	return msgs
}

func notBefore(checkIn time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		checkOut, ok := value.(time.Time)
		if !ok || checkOut.IsZero() || checkIn.IsZero() {
			return nil
		}
		if checkOut.Before(checkIn) {
			return errors.New("the check-out cannot be before the check-in")
		}
		return nil
	}
}

func lessThanGuests(numberOfGuests int) validation.RuleFunc {
	return func(value interface{}) error {
		freeQuote, ok := value.(int)
		if !ok {
			return nil
		}
		if numberOfGuests > 0 && freeQuote >= numberOfGuests {
			return fmt.Errorf("the free quote must be less than the number of guests (%d)", numberOfGuests)
		}
		return nil
	}
}
