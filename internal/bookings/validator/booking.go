package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/timeslot"
)

// ClosedWeekday is the day rooms cannot be booked. A fixed global rule for
// now; making it per-room would only touch this package.
const ClosedWeekday = time.Sunday

// BookingValidator checks a candidate booking before it reaches the conflict
// check. It is stateless and performs no I/O: room existence and slot
// conflicts are someone else's job.
type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate applies the rules in order, first failure wins:
// struct shape, parsable date, closed day, time range ordering.
// The booking is passed through unchanged.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperrors.Validation("Booking validation failed", map[string]any{
				"errors": translateValidationErrors(validationErrs),
			})
		}
		return apperrors.Internal("Booking validation failed", err)
	}

	date, err := timeslot.ParseDate(booking.Date)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	if date.Weekday() == ClosedWeekday {
		return apperrors.ClosedDay(fmt.Sprintf("Bookings on %ss are not allowed.", ClosedWeekday))
	}

	interval, err := timeslot.NewInterval(booking.StartTime, booking.EndTime)
	if err != nil {
		return apperrors.InvalidRange(err.Error())
	}
	if !interval.Start.Before(interval.End) {
		return apperrors.InvalidRange("Start time must be before end time.")
	}

	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) []string {
	var messages []string

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		messages = append(messages, message)
	}

	return messages
}
