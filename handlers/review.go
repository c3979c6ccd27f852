package handlers

import (
	"errors"
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/middleware"
	"github.com/blue9kamrul/SkillBridge-backend/services/review"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes tutor reviews.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrReviewNotFound), errors.Is(err, review.ErrTutorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, review.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, review.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, review.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// ListReviewsHandler handles GET /api/reviews scoped to the actor's role.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	reviews, err := h.Service.List(c.Request.Context(), actor)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "data": reviews})
}

// ListTutorReviewsHandler handles GET /api/tutors/:id/reviews.
func (h *ReviewHandler) ListTutorReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListByTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "data": reviews})
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.Service.Create(c.Request.Context(), actor.ID, input)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	logger.Info("review created",
		zap.String("reviewID", detail.ID),
		zap.String("studentID", actor.ID),
		zap.String("tutorID", detail.TutorID),
	)
	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "data": detail})
}

// UpdateReviewHandler handles PATCH /api/reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.Service.Update(c.Request.Context(), c.Param("id"), actor, req.Rating, req.Comment)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "data": detail})
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
