package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

// canView владелец записи, её стилист или администратор
func canView(actor domain.Actor, b *domain.Booking) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.Role == domain.RoleCustomer:
		return b.CustomerID == actor.UserID
	case actor.Role == domain.RoleProvider:
		return b.StylistID == actor.UserID
	}
	return false
}

// canUpdate стилист записи и администратор меняют любые поля,
// клиент может только отменить свою запись с причиной
func canUpdate(actor domain.Actor, b *domain.Booking, req *models.UpdateBookingRequest, next *domain.BookingStatus) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.Role == domain.RoleProvider {
		return b.StylistID == actor.UserID
	}
	if actor.Role != domain.RoleCustomer || b.CustomerID != actor.UserID {
		return false
	}

	onlyCancel := next != nil && *next == domain.StatusCancelled &&
		req.StylistNotes == nil && req.DepositAmount == nil && req.TotalAmount == nil
	return onlyCancel
}

// cancelParty сторона отмены: явно переданная администратором, иначе по роли
func cancelParty(actor domain.Actor, requested *string) (*domain.CancelParty, error) {
	party := actor.Role.CancelParty()
	if requested != nil && actor.IsAdmin() {
		party = domain.CancelParty(*requested)
		if !party.Valid() {
			return nil, fmt.Errorf("%w: unknown cancelledBy %q", ErrInvalidInput, *requested)
		}
	}
	return &party, nil
}

// validateUpdate проверяет поля запроса и возвращает целевой статус, если он передан
func validateUpdate(req *models.UpdateBookingRequest) (*domain.BookingStatus, error) {
	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.StylistNotes != nil && len(*req.StylistNotes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: stylistNotes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	if req.DepositAmount != nil && *req.DepositAmount < 0 {
		return nil, fmt.Errorf("%w: depositAmount must not be negative", ErrInvalidInput)
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}
	if req.CancelledBy != nil && !domain.CancelParty(*req.CancelledBy).Valid() {
		return nil, fmt.Errorf("%w: unknown cancelledBy %q", ErrInvalidInput, *req.CancelledBy)
	}

	if req.Status == nil {
		return nil, nil
	}

	status, err := domain.ParseBookingStatus(*req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if status == domain.StatusRescheduled {
		return nil, fmt.Errorf("%w: use reschedule to move a booking", ErrInvalidInput)
	}
	return &status, nil
}
