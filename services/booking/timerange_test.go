package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return TimeRange{Start: s, End: e}
}

func TestTimeRangeOverlaps(t *testing.T) {
	base := mkRange(t, "2025-01-05T14:00:00Z", "2025-01-05T15:00:00Z")

	tests := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{
			name:  "partial overlap at start",
			other: mkRange(t, "2025-01-05T13:30:00Z", "2025-01-05T14:30:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap at end",
			other: mkRange(t, "2025-01-05T14:30:00Z", "2025-01-05T15:30:00Z"),
			want:  true,
		},
		{
			name:  "fully contained",
			other: mkRange(t, "2025-01-05T14:15:00Z", "2025-01-05T14:45:00Z"),
			want:  true,
		},
		{
			name:  "fully containing",
			other: mkRange(t, "2025-01-05T13:00:00Z", "2025-01-05T16:00:00Z"),
			want:  true,
		},
		{
			name:  "identical",
			other: base,
			want:  true,
		},
		{
			name:  "adjacent before shares no instant",
			other: mkRange(t, "2025-01-05T13:00:00Z", "2025-01-05T14:00:00Z"),
			want:  false,
		},
		{
			name:  "adjacent after shares no instant",
			other: mkRange(t, "2025-01-05T15:00:00Z", "2025-01-05T16:00:00Z"),
			want:  false,
		},
		{
			name:  "disjoint",
			other: mkRange(t, "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestTimeRangeIsValid(t *testing.T) {
	assert.True(t, mkRange(t, "2025-01-05T14:00:00Z", "2025-01-05T15:00:00Z").IsValid())
	assert.False(t, mkRange(t, "2025-01-05T15:00:00Z", "2025-01-05T14:00:00Z").IsValid())

	same, _ := time.Parse(time.RFC3339, "2025-01-05T14:00:00Z")
	assert.False(t, TimeRange{Start: same, End: same}.IsValid())
}

func TestTimeRangeIsFuture(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2025-01-05T12:00:00Z")
	r := mkRange(t, "2025-01-05T14:00:00Z", "2025-01-05T15:00:00Z")

	assert.True(t, r.IsFuture(now))
	assert.False(t, r.IsFuture(r.Start))
	assert.False(t, r.IsFuture(r.Start.Add(time.Minute)))
}

func TestTimeRangeString(t *testing.T) {
	r := mkRange(t, "2025-01-05T14:00:00Z", "2025-01-05T15:00:00Z")
	assert.Equal(t, "Jan 5, 2025, 2:00 PM to 3:00 PM", r.String())
}
