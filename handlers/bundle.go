package handlers

import "github.com/blue9kamrul/SkillBridge-backend/services/auth"

// HandlerBundle groups every handler plus the auth service the route-level
// middleware needs. main.go builds one and hands it to routes.RegisterRoutes.
type HandlerBundle struct {
	AuthService auth.AuthService

	Auth     *AuthHandler
	Booking  *BookingHandler
	Tutor    *TutorHandler
	Student  *StudentHandler
	Review   *ReviewHandler
	Category *CategoryHandler
	Admin    *AdminHandler
}
