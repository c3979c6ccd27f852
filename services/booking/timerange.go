package booking

import (
	"fmt"
	"time"
)

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two ranges share any instant. The single
// predicate covers partial-start, partial-end and full containment in either
// direction, and is symmetric.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// IsValid reports whether the range is non-empty.
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// IsFuture reports whether the range starts strictly after now.
func (r TimeRange) IsFuture(now time.Time) bool {
	return r.Start.After(now)
}

// String formats the range the way booking conflicts are surfaced to users,
// e.g. "Jan 5, 2025, 2:00 PM to 3:00 PM".
func (r TimeRange) String() string {
	return fmt.Sprintf("%s to %s",
		r.Start.Format("Jan 2, 2006, 3:04 PM"),
		r.End.Format("3:04 PM"))
}
