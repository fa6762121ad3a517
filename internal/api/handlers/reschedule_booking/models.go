package reschedule_booking

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
	rescheduleBooking "github.com/m04kA/SMC-StylistBooking/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string `json:"newDate"`      // "2025-10-16"
	NewStartTime string `json:"newStartTime"` // "10:00"
	NewEndTime   string `json:"newEndTime"`   // "11:00"
}

// RescheduleBookingResponse исходная и новая запись
type RescheduleBookingResponse struct {
	Original    *models.BookingResponse `json:"original"`
	Rescheduled *models.BookingResponse `json:"rescheduled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string, actor domain.Actor) (*rescheduleBooking.Request, error) {
	date, err := domain.ParseDate(r.NewDate)
	if err != nil {
		return nil, fmt.Errorf("newDate: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, fmt.Errorf("newStartTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.NewEndTime)
	if err != nil {
		return nil, fmt.Errorf("newEndTime: %w", err)
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		NewDate:   date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		Original:    models.FromDomainBooking(resp.Original),
		Rescheduled: models.FromDomainBooking(resp.Rescheduled),
	}
}
