// README: Request validators built on go-playground/validator with a station-set rule.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"railsim/internal/logger"
	"railsim/internal/modules/booking"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Is lets callers treat any validation failure as booking.ErrBadRequest.
func (v ValidationErrors) Is(target error) bool {
	return target == booking.ErrBadRequest
}

type StationLookup interface {
	Lookup(name string) (route.Station, bool)
}

type BookingValidator struct {
	validate *validator.Validate
	stations StationLookup
	maxSeats int
	logger   *logger.Logger
}

func NewBookingValidator(stations StationLookup, tatkalMax int, log *logger.Logger) *BookingValidator {
	if log == nil {
		log = logger.Nop()
	}
	if tatkalMax <= 0 {
		tatkalMax = tatkal.DefaultMaxSeats
	}
	bv := &BookingValidator{
		validate: validator.New(),
		stations: stations,
		maxSeats: tatkalMax,
		logger:   log,
	}

	if err := bv.validate.RegisterValidation("station", bv.validateStation); err != nil {
		log.Fatal("Failed to register 'station' validator", "error", err)
	}

	log.Debug("Booking validator initialized")
	return bv
}

func (v *BookingValidator) validateStation(fl validator.FieldLevel) bool {
	if v.stations == nil {
		return true
	}
	_, ok := v.stations.Lookup(fl.Field().String())
	return ok
}

func (v *BookingValidator) ValidateBooking(req booking.Request) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) ValidateTatkal(req tatkal.Request) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	if req.Seats > v.maxSeats {
		return ValidationErrors{
			ValidationError{
				Field:   "Seats",
				Message: fmt.Sprintf("Seats must be at most %d", v.maxSeats),
			},
		}
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "station":
			message = fmt.Sprintf("%s %q is not a known station", err.Field(), err.Value())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
