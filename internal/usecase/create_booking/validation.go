package create_booking

import (
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StylistID == "" {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}
	return validateSlot(&req.Slot)
}

// validatePublicRequest валидирует публичный запрос
func validatePublicRequest(req *PublicRequest) error {
	if req.StylistID == "" {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}
	if !phonePattern.MatchString(req.CustomerPhone) {
		return fmt.Errorf("%w: customerPhone must contain 7-15 digits", ErrInvalidInput)
	}
	if req.CustomerName != nil && len(*req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}
	return validateSlot(&req.Slot)
}

// validateSlot проверяет формат и порядок времени, заметки и суммы
func validateSlot(s *Slot) error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	r, err := domain.NewTimeRange(s.StartTime, s.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if r.IsEmpty() {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if s.CustomerNotes != nil && len(*s.CustomerNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: customerNotes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if s.DepositAmount != nil && *s.DepositAmount < 0 {
		return fmt.Errorf("%w: depositAmount must not be negative", ErrInvalidInput)
	}
	if s.TotalAmount != nil && *s.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}
	return nil
}
