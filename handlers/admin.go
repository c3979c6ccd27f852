package handlers

import (
	"errors"
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/services/admin"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin dashboard and user management. All routes are
// admin-gated at the route level.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Service.DashboardStats(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "data": users})
}

// UpdateUserRoleHandler handles PATCH /api/admin/users/:id/role.
func (h *AdminHandler) UpdateUserRoleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.Param("id")
	user, err := h.Service.UpdateUserRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, admin.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to update user role", zap.Error(err), zap.String("userID", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		}
		return
	}

	logger.Info("user role updated", zap.String("userID", userID), zap.String("role", string(req.Role)))
	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully", "data": user})
}

// UpdateUserStatusHandler handles PATCH /api/admin/users/:id/status.
func (h *AdminHandler) UpdateUserStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Status models.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.Param("id")
	user, err := h.Service.UpdateUserBanStatus(c.Request.Context(), userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, admin.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to update user status", zap.Error(err), zap.String("userID", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		}
		return
	}

	logger.Info("user status updated", zap.String("userID", userID), zap.String("status", string(req.Status)))
	c.JSON(http.StatusOK, gin.H{"message": "User status updated successfully", "data": user})
}
