package models

import (
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// Request модели

// UpdateBookingRequest частичное обновление записи. Поля nil не меняются.
type UpdateBookingRequest struct {
	Status             *string  `json:"status,omitempty"`
	StylistNotes       *string  `json:"stylistNotes,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledBy        *string  `json:"cancelledBy,omitempty"`
	DepositAmount      *float64 `json:"depositAmount,omitempty"`
	TotalAmount        *float64 `json:"totalAmount,omitempty"`
}

// IsEmpty возвращает true, если ни одно поле не передано
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.StylistNotes == nil && r.CancellationReason == nil &&
		r.CancelledBy == nil && r.DepositAmount == nil && r.TotalAmount == nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string `json:"id"`
	StylistID   string `json:"stylistId"`
	CustomerID  string `json:"customerId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "11:00"
	Status      string `json:"status"`

	DepositAmount *float64 `json:"depositAmount,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	CustomerNotes *string  `json:"customerNotes,omitempty"`
	StylistNotes  *string  `json:"stylistNotes,omitempty"`

	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	ConfirmedAt        *string `json:"confirmedAt,omitempty"`
	CompletedAt        *string `json:"completedAt,omitempty"`
	ReminderSentAt     *string `json:"reminderSentAt,omitempty"`
	RescheduledFrom    *string `json:"rescheduledFrom,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PublicBookingResponse ограниченное представление записи без авторизации
type PublicBookingResponse struct {
	ID            string  `json:"id"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	StylistName   string  `json:"stylistName"`
	SalonAddress  *string `json:"salonAddress,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		StylistID:          b.StylistID,
		CustomerID:         b.CustomerID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		DepositAmount:      b.DepositAmount,
		TotalAmount:        b.TotalAmount,
		CustomerNotes:      b.CustomerNotes,
		StylistNotes:       b.StylistNotes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        formatTime(b.CancelledAt),
		ConfirmedAt:        formatTime(b.ConfirmedAt),
		CompletedAt:        formatTime(b.CompletedAt),
		ReminderSentAt:     formatTime(b.ReminderSentAt),
		RescheduledFrom:    b.RescheduledFrom,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledBy != nil {
		by := string(*b.CancelledBy)
		resp.CancelledBy = &by
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// formatTime конвертирует время в строку ISO 8601
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
