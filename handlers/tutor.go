package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blue9kamrul/SkillBridge-backend/middleware"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/services/tutor"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorHandler exposes tutor discovery and profile management.
type TutorHandler struct {
	Service tutor.TutorService
}

// NewTutorHandler creates a TutorHandler.
func NewTutorHandler(svc tutor.TutorService) *TutorHandler {
	return &TutorHandler{Service: svc}
}

// ListTutorsHandler handles GET /api/tutors with optional filters.
func (h *TutorHandler) ListTutorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var filter models.TutorFilter
	if subjects := c.Query("subjects"); subjects != "" {
		filter.Subjects = strings.Split(subjects, ",")
	}
	if v := c.Query("min_rate"); v != "" {
		filter.MinRate, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_rate"); v != "" {
		filter.MaxRate, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("min_experience"); v != "" {
		filter.MinExperience, _ = strconv.Atoi(v)
	}
	if v := c.Query("min_rating"); v != "" {
		filter.MinRating, _ = strconv.ParseFloat(v, 64)
	}
	filter.CategoryID = c.Query("category_id")

	tutors, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("failed to list tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tutors), "data": tutors})
}

// FeaturedTutorsHandler handles GET /api/tutors/featured.
func (h *TutorHandler) FeaturedTutorsHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	tutors, err := h.Service.Featured(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tutors), "data": tutors})
}

// AvailableTutorsHandler handles GET /api/tutors/available.
func (h *TutorHandler) AvailableTutorsHandler(c *gin.Context) {
	tutors, err := h.Service.Available(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tutors), "data": tutors})
}

// GetTutorHandler handles GET /api/tutors/:id.
func (h *TutorHandler) GetTutorHandler(c *gin.Context) {
	detail, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tutor.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GetTutorAvailabilityHandler handles GET /api/tutors/:id/availability.
func (h *TutorHandler) GetTutorAvailabilityHandler(c *gin.Context) {
	availability, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tutor.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"availability": availability}})
}

// CreateTutorProfileHandler handles POST /api/tutors. The actor becomes a tutor.
func (h *TutorHandler) CreateTutorProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input tutor.TutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.Service.Create(c.Request.Context(), actor.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrAlreadyTutor):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, tutor.ErrUserNotFound), errors.Is(err, tutor.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to create tutor profile", zap.Error(err), zap.String("userID", actor.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tutor profile"})
		}
		return
	}

	logger.Info("tutor profile created", zap.String("tutorID", detail.ID), zap.String("userID", actor.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "Tutor profile created successfully", "data": detail})
}

// GetMyTutorProfileHandler handles GET /api/tutors/me.
func (h *TutorHandler) GetMyTutorProfileHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	detail, err := h.Service.GetByUserID(c.Request.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, tutor.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutor profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// UpdateMyTutorProfileHandler handles PATCH /api/tutors/me.
func (h *TutorHandler) UpdateMyTutorProfileHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var update tutor.TutorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.Service.UpdateByUserID(c.Request.Context(), actor.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrProfileNotFound), errors.Is(err, tutor.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tutor profile"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tutor profile updated successfully", "data": detail})
}

// UpdateMyAvailabilityHandler handles PATCH /api/tutors/me/availability.
func (h *TutorHandler) UpdateMyAvailabilityHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Availability string `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.Service.UpdateAvailability(c.Request.Context(), actor.ID, req.Availability)
	if err != nil {
		if errors.Is(err, tutor.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully", "data": detail})
}

// DeleteTutorProfileHandler handles DELETE /api/tutors/:id.
func (h *TutorHandler) DeleteTutorProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tutorID := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), tutorID, actor); err != nil {
		switch {
		case errors.Is(err, tutor.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, tutor.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to delete tutor profile", zap.Error(err), zap.String("tutorID", tutorID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tutor profile"})
		}
		return
	}

	logger.Info("tutor profile deleted", zap.String("tutorID", tutorID), zap.String("actorID", actor.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Tutor profile deleted successfully"})
}
