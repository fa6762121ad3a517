package cancel_booking

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

func (m *mockService) Cancel(ctx context.Context, id string, actor domain.Actor, reason *string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, actor, reason)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var customer = domain.Actor{UserID: "customer-1", Role: domain.RoleCustomer}

func serve(svc *mockService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/booking-1", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), customer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithoutBody(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, "booking-1", customer, (*string)(nil)).
		Return(&models.BookingResponse{ID: "booking-1", Status: "cancelled"}, nil)

	rec := serve(svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandle_WithReason(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, "booking-1", customer, mock.MatchedBy(func(reason *string) bool {
		return reason != nil && *reason == "sick"
	})).Return(&models.BookingResponse{ID: "booking-1", Status: "cancelled"}, nil)

	rec := serve(svc, `{"cancellationReason":"sick"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"forbidden", bookings.ErrAccessDenied, http.StatusForbidden},
		{"terminal", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"concurrent", bookings.ErrStatusChanged, http.StatusConflict},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, "booking-1", customer, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := serve(&mockService{}, `{"reason":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
