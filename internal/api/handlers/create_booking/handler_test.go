package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StylistBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockUseCase) ExecutePublic(ctx context.Context, req *createBooking.PublicRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"bookingDate":"2025-10-20","startTime":"10:00","endTime":"11:00"}`

func booking(customerID string) *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		StylistID:   "stylist-1",
		CustomerID:  customerID,
		BookingDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		Status:      domain.StatusPending,
	}
}

func authed(req *http.Request, role domain.Role) *http.Request {
	return req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: "customer-1", Role: role}))
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.StylistID == "stylist-1" && req.CustomerID == "customer-1" &&
			req.StartTime == "10:00" && req.EndTime == "11:00"
	})).Return(booking("customer-1"), nil)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/bookings?stylistId=stylist-1", strings.NewReader(body)), domain.RoleCustomer)
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	uc.AssertExpectations(t)
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		body   string
		role   domain.Role
		ucErr  error
		status int
	}{
		{"stylist cannot book", "/api/v1/bookings?stylistId=stylist-1", body, domain.RoleProvider, nil, http.StatusForbidden},
		{"missing stylist", "/api/v1/bookings", body, domain.RoleCustomer, nil, http.StatusBadRequest},
		{"unknown field", "/api/v1/bookings?stylistId=stylist-1", `{"foo":1}`, domain.RoleCustomer, nil, http.StatusBadRequest},
		{"bad time", "/api/v1/bookings?stylistId=stylist-1", `{"bookingDate":"2025-10-20","startTime":"25:00","endTime":"11:00"}`, domain.RoleCustomer, nil, http.StatusBadRequest},
		{"slot taken", "/api/v1/bookings?stylistId=stylist-1", body, domain.RoleCustomer, createBooking.ErrSlotTaken, http.StatusConflict},
		{"stylist not found", "/api/v1/bookings?stylistId=stylist-1", body, domain.RoleCustomer, createBooking.ErrStylistNotFound, http.StatusNotFound},
		{"outside schedule", "/api/v1/bookings?stylistId=stylist-1", body, domain.RoleCustomer, domain.ErrInvalidSchedule, http.StatusUnprocessableEntity},
		{"internal", "/api/v1/bookings?stylistId=stylist-1", body, domain.RoleCustomer, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			req := authed(httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body)), tt.role)
			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings?stylistId=stylist-1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(&mockUseCase{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlePublic(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("ExecutePublic", mock.Anything, mock.MatchedBy(func(req *createBooking.PublicRequest) bool {
		return req.StylistID == "stylist-1" && req.CustomerPhone == "+15550001111"
	})).Return(booking("customer-9"), nil)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/public/stylists/{stylistId}/book", NewHandler(uc, nopLogger{}).HandlePublic)

	payload := `{"bookingDate":"2025-10-20","startTime":"10:00","endTime":"11:00","customerPhone":"+15550001111"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/stylists/stylist-1/book", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "customer-9", resp.CustomerID)
	uc.AssertExpectations(t)
}
