package handlers

import (
	"errors"
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/services/booking"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps the booking engine's error kinds onto transport
// statuses. The kind is preserved losslessly: the message is the engine's,
// only the status code is chosen here.
func respondBookingError(c *gin.Context, err error) {
	var (
		validation *booking.ValidationError
		notFound   *booking.NotFoundError
		conflict   *booking.ConflictError
		forbidden  *booking.ForbiddenError
		transition *booking.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Message})
	case errors.As(err, &transition):
		c.JSON(http.StatusBadRequest, gin.H{"error": transition.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
