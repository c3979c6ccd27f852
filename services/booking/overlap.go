package booking

import (
	"context"
	"fmt"
)

// checkOverlap queries the tutor's firm reservations against the candidate
// range and raises a ConflictError naming the first conflicting window.
// "First" is a tie-break in storage insertion order, deterministic but not a
// contractual ordering guarantee.
func (s *DefaultBookingService) checkOverlap(ctx context.Context, tutorID string, r TimeRange) error {
	existing, err := s.Repo.FindOverlapping(ctx, tutorID, r.Start, r.End)
	if err != nil {
		return fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}

	conflict := existing[0]
	window := TimeRange{Start: conflict.StartTime, End: conflict.EndTime}
	return NewConflictError(fmt.Sprintf(
		"This tutor is already booked from %s. Please choose a different time slot.", window))
}
