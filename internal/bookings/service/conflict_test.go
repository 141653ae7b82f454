package service

import (
	"strings"
	"testing"

	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/timeslot"
)

func mustInterval(t *testing.T, start, end string) timeslot.Interval {
	t.Helper()
	interval, err := timeslot.NewInterval(start, end)
	if err != nil {
		t.Fatalf("bad interval %s-%s: %v", start, end, err)
	}
	return interval
}

func storedBooking(start, end string) *model.Booking {
	return &model.Booking{
		RoomID:    "507f1f77bcf86cd799439011",
		Date:      "2024-06-10",
		StartTime: start,
		EndTime:   end,
	}
}

func TestCheckConflicts(t *testing.T) {
	existing := []*model.Booking{storedBooking("14:00", "15:00")}

	tests := []struct {
		name         string
		start, end   string
		wantConflict bool
	}{
		{"before, touching", "13:00", "14:00", false},
		{"after, touching", "15:00", "16:00", false},
		{"clearly before", "09:00", "10:00", false},
		{"contained", "14:30", "14:45", true},
		{"identical", "14:00", "15:00", true},
		{"overlaps start", "13:30", "14:30", true},
		{"overlaps end", "14:30", "15:30", true},
		{"covers", "13:00", "16:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConflicts(existing, mustInterval(t, tt.start, tt.end))
			if tt.wantConflict {
				if err == nil {
					t.Fatal("expected conflict, got nil")
				}
				appErr := apperrors.AsAppError(err)
				if appErr.Code != apperrors.CodeConflict {
					t.Errorf("expected code %s, got %s", apperrors.CodeConflict, appErr.Code)
				}
				if !strings.Contains(appErr.Message, "14:00 - 15:00") {
					t.Errorf("expected message to name the colliding slot, got %q", appErr.Message)
				}
			} else if err != nil {
				t.Fatalf("expected no conflict, got %v", err)
			}
		})
	}
}

func TestCheckConflicts_EmptySchedule(t *testing.T) {
	if err := checkConflicts(nil, mustInterval(t, "00:00", "23:59")); err != nil {
		t.Fatalf("expected empty schedule to accept anything, got %v", err)
	}
}

func TestCheckConflicts_CorruptStoredBooking(t *testing.T) {
	existing := []*model.Booking{storedBooking("25:00", "26:00")}

	err := checkConflicts(existing, mustInterval(t, "10:00", "11:00"))
	if err == nil {
		t.Fatal("expected error for unreadable stored booking")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected internal error, got %v", err)
	}
}
