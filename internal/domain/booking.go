package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusCompleted   BookingStatus = "completed"
	StatusRescheduled BookingStatus = "rescheduled"
)

// allowed transitions; states missing from the map are terminal
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusRescheduled},
}

// ParseBookingStatus converts a raw value into a known status
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
	}
	return status, nil
}

// Valid reports whether the status is one of the known values
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRescheduled:
		return true
	}
	return false
}

// IsActive returns true if a booking in this status occupies its time range
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CancelParty identifies who cancelled a booking
type CancelParty string

const (
	CancelledByCustomer CancelParty = "customer"
	CancelledByStylist  CancelParty = "stylist"
	CancelledByAdmin    CancelParty = "admin"
)

// Valid reports whether the party is known
func (p CancelParty) Valid() bool {
	switch p {
	case CancelledByCustomer, CancelledByStylist, CancelledByAdmin:
		return true
	}
	return false
}

// Booking represents a reserved time range of a stylist
type Booking struct {
	ID          string
	StylistID   string
	CustomerID  string
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	DepositAmount *float64
	TotalAmount   *float64
	CustomerNotes *string
	StylistNotes  *string

	CancelledBy        *CancelParty
	CancelledAt        *time.Time
	CancellationReason *string

	ConfirmedAt     *time.Time
	CompletedAt     *time.Time
	ReminderSentAt  *time.Time
	RescheduledFrom *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time range
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Range returns the booked time range in minutes since midnight
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime.Minutes(), End: b.EndTime.Minutes()}
}

// StartsAt returns the absolute start of the booking
func (b *Booking) StartsAt() time.Time {
	return b.StartTime.On(b.BookingDate)
}

// Transition moves the booking into next and stamps the related timestamps.
// Moving into CANCELLED requires the cancelling party.
func (b *Booking) Transition(next BookingStatus, now time.Time, by *CancelParty) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, next)
	}
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}

	switch next {
	case StatusCancelled:
		if by == nil || !by.Valid() {
			return fmt.Errorf("%w: cancelledBy is required", ErrInvalidInput)
		}
		party := *by
		b.CancelledBy = &party
		b.CancelledAt = &now
	case StatusConfirmed:
		b.ConfirmedAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}

	b.Status = next
	return nil
}

// BookingFilter selects bookings from the ledger
type BookingFilter struct {
	StylistID  *string
	CustomerID *string
	Date       *time.Time
	Statuses   []BookingStatus
	// ExcludeID skips one booking (the one being rescheduled)
	ExcludeID *string
	// ReminderPending keeps only bookings whose reminder has not been sent
	ReminderPending bool
}
