package update_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id string, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, actor, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var stylist = domain.Actor{UserID: "stylist-1", Role: domain.RoleProvider}

func serve(svc *mockService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/booking-1", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), stylist))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, "booking-1", stylist, mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.Status != nil && *req.Status == "confirmed" && req.StylistNotes == nil
	})).Return(&models.BookingResponse{ID: "booking-1", Status: "confirmed"}, nil)

	rec := serve(svc, `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandle_RejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no body", ``},
		{"unknown field", `{"colour":"red"}`},
		{"wrong type", `{"totalAmount":"a lot"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}

			rec := serve(svc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"forbidden", bookings.ErrAccessDenied, http.StatusForbidden},
		{"concurrent", bookings.ErrStatusChanged, http.StatusConflict},
		{"invalid input", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, "booking-1", stylist, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, `{"stylistNotes":"bring photos"}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_WithoutActor(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(&mockService{}, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/booking-1", strings.NewReader(`{"status":"confirmed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
