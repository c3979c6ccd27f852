package booking

import (
	"fmt"
	"strings"
	"time"
)

// weekendTokens mark an availability text as covering Friday/Saturday.
var weekendTokens = []string{"weekend", "friday", "saturday", "fri", "sat"}

const (
	earliestHour = 6  // bookings before 06:00 are outside tutoring hours
	latestHour   = 22 // bookings at or after 22:00 are outside tutoring hours
)

// CheckAvailability gates a candidate range against the tutor's free-text
// availability description. This is a deliberately permissive heuristic, not
// a schedule parser: an empty description passes unconditionally, weekends
// (Friday/Saturday) are rejected unless the text mentions them, and start
// hours outside typical tutoring hours are rejected whenever a description
// is set. Upgrading this to a real schedule parser would change which inputs
// are accepted; it is an extension point, not a bug.
func CheckAvailability(r TimeRange, availability string) error {
	if strings.TrimSpace(availability) == "" {
		return nil
	}

	text := strings.ToLower(availability)

	day := r.Start.Weekday()
	if day == time.Friday || day == time.Saturday {
		if !containsAny(text, weekendTokens) {
			return NewValidationError(fmt.Sprintf(
				"This tutor is not available on weekends (Friday/Saturday). Available slots: %s",
				availability))
		}
	}

	if hour := r.Start.Hour(); hour < earliestHour || hour >= latestHour {
		return NewValidationError(fmt.Sprintf(
			"Booking time is outside typical tutoring hours. Tutor availability: %s",
			availability))
	}

	return nil
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
