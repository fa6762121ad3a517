package reschedule_booking

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.Actor.UserID == "" {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	r, err := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if r.IsEmpty() {
		return fmt.Errorf("%w: newStartTime must be before newEndTime", ErrInvalidInput)
	}

	return nil
}

// canReschedule владелец записи, её стилист или администратор
func canReschedule(actor domain.Actor, b *domain.Booking) bool {
	if actor.IsAdmin() {
		return true
	}
	switch actor.Role {
	case domain.RoleCustomer:
		return b.CustomerID == actor.UserID
	case domain.RoleProvider:
		return b.StylistID == actor.UserID
	}
	return false
}
