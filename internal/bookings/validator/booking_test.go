package validator

import (
	"testing"

	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func validBooking() *model.Booking {
	return &model.Booking{
		RoomID:    "507f1f77bcf86cd799439011",
		Date:      "2024-06-10",
		StartTime: "14:00",
		EndTime:   "15:00",
		Email:     "alice@example.com",
	}
}

func TestValidate_OK(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate(validBooking()); err != nil {
		t.Fatalf("expected valid booking to pass, got: %v", err)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(b *model.Booking)
		wantCode string
	}{
		{
			name:     "missing room id",
			mutate:   func(b *model.Booking) { b.RoomID = "" },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "room id not an object id",
			mutate:   func(b *model.Booking) { b.RoomID = "not-an-id" },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "missing email",
			mutate:   func(b *model.Booking) { b.Email = "" },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "malformed date",
			mutate:   func(b *model.Booking) { b.Date = "10-06-2024" },
			wantCode: apperrors.CodeInvalidInput,
		},
		{
			name:     "date with time suffix",
			mutate:   func(b *model.Booking) { b.Date = "2024-06-10T00:00" },
			wantCode: apperrors.CodeInvalidInput,
		},
		{
			name:     "sunday is closed",
			mutate:   func(b *model.Booking) { b.Date = "2024-06-09" },
			wantCode: apperrors.CodeClosedDay,
		},
		{
			name:     "malformed start time",
			mutate:   func(b *model.Booking) { b.StartTime = "9:00" },
			wantCode: apperrors.CodeInvalidRange,
		},
		{
			name:     "out of range hour",
			mutate:   func(b *model.Booking) { b.EndTime = "24:00" },
			wantCode: apperrors.CodeInvalidRange,
		},
		{
			name: "start equals end",
			mutate: func(b *model.Booking) {
				b.StartTime = "14:00"
				b.EndTime = "14:00"
			},
			wantCode: apperrors.CodeInvalidRange,
		},
		{
			name: "start after end",
			mutate: func(b *model.Booking) {
				b.StartTime = "16:00"
				b.EndTime = "15:00"
			},
			wantCode: apperrors.CodeInvalidRange,
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := v.Validate(b)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%v)", tt.wantCode, appErr.Code, err)
			}
		})
	}
}

// Closed-day checking must run on the parsed weekday, never on the raw string.
func TestValidate_ClosedDayAcrossWeeks(t *testing.T) {
	v := newTestValidator()

	sundays := []string{"2024-06-02", "2024-06-09", "2024-12-29"}
	for _, date := range sundays {
		b := validBooking()
		b.Date = date
		err := v.Validate(b)
		if err == nil || apperrors.AsAppError(err).Code != apperrors.CodeClosedDay {
			t.Errorf("date %s: expected closed day rejection, got %v", date, err)
		}
	}

	weekdays := []string{"2024-06-03", "2024-06-08", "2024-12-30"}
	for _, date := range weekdays {
		b := validBooking()
		b.Date = date
		if err := v.Validate(b); err != nil {
			t.Errorf("date %s: expected pass, got %v", date, err)
		}
	}
}
