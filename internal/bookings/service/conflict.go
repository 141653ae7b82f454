package service

import (
	"fmt"

	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/timeslot"
)

// checkConflicts tests the candidate interval against every stored booking
// for the same room and date. Touching intervals (end == start) are fine;
// the first overlap found is reported with the colliding slot's times.
func checkConflicts(existing []*model.Booking, candidate timeslot.Interval) error {
	for _, b := range existing {
		interval, err := timeslot.NewInterval(b.StartTime, b.EndTime)
		if err != nil {
			// A stored booking that fails to parse means the data is corrupt,
			// not that the slot is free.
			return apperrors.Internal("Failed to read existing booking times", err)
		}

		if candidate.Overlaps(interval) {
			return apperrors.Conflict(fmt.Sprintf(
				"Booking time overlaps with existing booking (%s - %s)",
				interval.Start, interval.End,
			))
		}
	}
	return nil
}
