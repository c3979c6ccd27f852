package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned results per operation.
type stubBookingService struct {
	createDetail *models.BookingDetail
	createErr    error
	getDetail    *models.BookingDetail
	getErr       error
	listDetails  []models.BookingDetail
	listErr      error
	deleteErr    error
}

func (s *stubBookingService) Create(ctx context.Context, studentID string, input models.BookingInput) (*models.BookingDetail, error) {
	return s.createDetail, s.createErr
}

func (s *stubBookingService) Get(ctx context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error) {
	return s.getDetail, s.getErr
}

func (s *stubBookingService) List(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error) {
	return s.listDetails, s.listErr
}

func (s *stubBookingService) ListByTutor(ctx context.Context, tutorID string) ([]models.BookingDetail, error) {
	return s.listDetails, s.listErr
}

func (s *stubBookingService) ChangeStatus(ctx context.Context, bookingID string, actor models.Actor, target models.BookingStatus) (*models.BookingDetail, error) {
	return s.getDetail, s.getErr
}

func (s *stubBookingService) Delete(ctx context.Context, bookingID string, actor models.Actor) error {
	return s.deleteErr
}

func bookingRouter(svc booking.BookingService, actor models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	})
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings", h.ListBookingsHandler)
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.PATCH("/api/bookings/:id/status", h.UpdateBookingStatusHandler)
	r.DELETE("/api/bookings/:id", h.DeleteBookingHandler)
	return r
}

func TestCreateBookingHandlerStatuses(t *testing.T) {
	student := models.Actor{ID: "student-1", Role: models.RoleStudent}
	body := `{"tutor_id":"tutor-1","start_time":"2025-06-02T14:00:00Z","end_time":"2025-06-02T15:00:00Z"}`

	tests := []struct {
		name       string
		svc        *stubBookingService
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			svc: &stubBookingService{createDetail: &models.BookingDetail{
				Booking: models.Booking{ID: "bk-1", Status: models.BookingConfirmed},
			}},
			body:       body,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			svc:        &stubBookingService{},
			body:       `{"tutor_id":"tutor-1"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Please provide all required fields: tutor_id, start_time, end_time",
		},
		{
			name:       "tutor not found",
			svc:        &stubBookingService{createErr: booking.NewNotFoundError("Tutor not found")},
			body:       body,
			wantStatus: http.StatusNotFound,
			wantError:  "Tutor not found",
		},
		{
			name:       "conflict",
			svc:        &stubBookingService{createErr: booking.NewConflictError("This tutor is already booked from Jun 2, 2025, 2:00 PM to 3:00 PM. Please choose a different time slot.")},
			body:       body,
			wantStatus: http.StatusConflict,
			wantError:  "This tutor is already booked from Jun 2, 2025, 2:00 PM to 3:00 PM. Please choose a different time slot.",
		},
		{
			name:       "validation failure",
			svc:        &stubBookingService{createErr: booking.NewValidationError("Booking must be in the future")},
			body:       body,
			wantStatus: http.StatusBadRequest,
			wantError:  "Booking must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bookingRouter(tt.svc, student)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp["error"])
			}
		})
	}
}

func TestGetBookingHandlerStatuses(t *testing.T) {
	student := models.Actor{ID: "student-1", Role: models.RoleStudent}

	t.Run("forbidden", func(t *testing.T) {
		svc := &stubBookingService{getErr: booking.NewForbiddenError("You don't have permission to view this booking")}
		r := bookingRouter(svc, student)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/bookings/bk-1", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubBookingService{getErr: booking.NewNotFoundError("Booking not found")}
		r := bookingRouter(svc, student)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/bookings/bk-1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	tutorActor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}

	t.Run("invalid transition maps to bad request", func(t *testing.T) {
		svc := &stubBookingService{getErr: booking.NewInvalidTransitionError("Only confirmed bookings can be marked as completed")}
		r := bookingRouter(svc, tutorActor)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/bookings/bk-1/status", strings.NewReader(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		r := bookingRouter(&stubBookingService{}, tutorActor)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/bookings/bk-1/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteBookingHandler(t *testing.T) {
	student := models.Actor{ID: "student-1", Role: models.RoleStudent}

	t.Run("deleted", func(t *testing.T) {
		r := bookingRouter(&stubBookingService{}, student)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/bookings/bk-1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("terminal booking is retained", func(t *testing.T) {
		svc := &stubBookingService{deleteErr: booking.NewInvalidTransitionError("Only confirmed bookings can be deleted")}
		r := bookingRouter(svc, student)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/bookings/bk-1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
