package handlers

import (
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/middleware"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/services/booking"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings. Students only (gated at
// the route level); the acting student is the booking owner.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields: tutor_id, start_time, end_time"})
		return
	}

	detail, err := h.Service.Create(c.Request.Context(), actor.ID, input)
	if err != nil {
		logger.Warn("booking creation failed", zap.String("studentID", actor.ID), zap.Error(err))
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "data": detail})
}

// ListBookingsHandler handles GET /api/bookings with role-scoped visibility.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	details, err := h.Service.List(c.Request.Context(), actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(details), "data": details})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	detail, err := h.Service.Get(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a status"})
		return
	}

	detail, err := h.Service.ChangeStatus(c.Request.Context(), c.Param("id"), actor, req.Status)
	if err != nil {
		logger.Warn("booking status change rejected",
			zap.String("bookingID", c.Param("id")),
			zap.String("actorID", actor.ID),
			zap.Error(err))
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "data": detail})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id. Students and admins
// only (gated at the route level); ownership is checked by the engine.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// GetTutorBookingsHandler handles GET /api/tutors/:id/bookings for a tutor's
// public page.
func (h *BookingHandler) GetTutorBookingsHandler(c *gin.Context) {
	details, err := h.Service.ListByTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(details), "data": details})
}
