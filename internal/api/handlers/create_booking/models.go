package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StylistBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate   string   `json:"bookingDate"` // "2025-10-15"
	StartTime     string   `json:"startTime"`   // "10:00"
	EndTime       string   `json:"endTime"`     // "11:00"
	CustomerNotes *string  `json:"customerNotes,omitempty"`
	DepositAmount *float64 `json:"depositAmount,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
}

// CreatePublicBookingRequest HTTP request model для записи без авторизации
type CreatePublicBookingRequest struct {
	CreateBookingRequest
	CustomerPhone string  `json:"customerPhone"`
	CustomerName  *string `json:"customerName,omitempty"`
}

// toSlot парсит дату и время записи
func (r *CreateBookingRequest) toSlot() (createBooking.Slot, error) {
	date, err := domain.ParseDate(r.BookingDate)
	if err != nil {
		return createBooking.Slot{}, fmt.Errorf("bookingDate: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return createBooking.Slot{}, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return createBooking.Slot{}, fmt.Errorf("endTime: %w", err)
	}

	return createBooking.Slot{
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		CustomerNotes: r.CustomerNotes,
		DepositAmount: r.DepositAmount,
		TotalAmount:   r.TotalAmount,
	}, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(stylistID, customerID string) (*createBooking.Request, error) {
	slot, err := r.toSlot()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StylistID:  stylistID,
		CustomerID: customerID,
		Slot:       slot,
	}, nil
}

// ToUseCaseRequest конвертирует публичный HTTP запрос в модель use case
func (r *CreatePublicBookingRequest) ToUseCaseRequest(stylistID string) (*createBooking.PublicRequest, error) {
	slot, err := r.toSlot()
	if err != nil {
		return nil, err
	}

	return &createBooking.PublicRequest{
		StylistID:     stylistID,
		CustomerPhone: r.CustomerPhone,
		CustomerName:  r.CustomerName,
		Slot:          slot,
	}, nil
}
