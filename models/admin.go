package models

// DashboardStats is the aggregate snapshot served to the admin dashboard.
type DashboardStats struct {
	Totals struct {
		Users      int64 `json:"users"`
		Tutors     int64 `json:"tutors"`
		Bookings   int64 `json:"bookings"`
		Categories int64 `json:"categories"`
		Reviews    int64 `json:"reviews"`
	} `json:"totals"`
	UsersByRole      map[Role]int64          `json:"users_by_role"`
	BookingsByStatus map[BookingStatus]int64 `json:"bookings_by_status"`
	RecentBookings   []Booking               `json:"recent_bookings"`
}
