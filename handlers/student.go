package handlers

import (
	"errors"
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/middleware"
	"github.com/blue9kamrul/SkillBridge-backend/services/student"

	"github.com/gin-gonic/gin"
)

// StudentHandler exposes the authenticated user's own profile.
type StudentHandler struct {
	Service student.StudentService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(svc student.StudentService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

// GetMyProfileHandler handles GET /api/students/me.
func (h *StudentHandler) GetMyProfileHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.Service.GetMyProfile(c.Request.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, student.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateMyProfileHandler handles PATCH /api/students/me.
func (h *StudentHandler) UpdateMyProfileHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var update student.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.UpdateMyProfile(c.Request.Context(), actor.ID, update)
	if err != nil {
		if errors.Is(err, student.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "data": user})
}
