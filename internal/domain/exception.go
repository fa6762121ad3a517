package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// ScheduleException blocks a stylist's time on one date or on every
// occurrence of a weekday. Without a time pair it blocks the whole day.
type ScheduleException struct {
	ID                 string
	StylistID          string
	Date               *time.Time
	IsRecurring        bool
	RecurringDayOfWeek *time.Weekday
	StartTime          *types.TimeString
	EndTime            *types.TimeString
	Reason             *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsFullDay returns true if the exception blocks the whole day
func (e *ScheduleException) IsFullDay() bool {
	return e.StartTime == nil && e.EndTime == nil
}

// Range returns the blocked range of a partial exception
func (e *ScheduleException) Range() (TimeRange, bool) {
	if e.StartTime == nil || e.EndTime == nil {
		return TimeRange{}, false
	}
	return TimeRange{Start: e.StartTime.Minutes(), End: e.EndTime.Minutes()}, true
}

// AppliesTo reports whether the exception covers date
func (e *ScheduleException) AppliesTo(date time.Time) bool {
	if e.IsRecurring {
		return e.RecurringDayOfWeek != nil && *e.RecurringDayOfWeek == date.Weekday()
	}
	return e.Date != nil && sameDay(*e.Date, date)
}

// Blocks reports whether the exception removes r from date
func (e *ScheduleException) Blocks(date time.Time, r TimeRange) bool {
	if !e.AppliesTo(date) {
		return false
	}
	if e.IsFullDay() {
		return true
	}
	er, _ := e.Range()
	return er.Overlaps(r)
}

// Validate checks the date/recurrence combination and the time pair
func (e *ScheduleException) Validate() error {
	if e.IsRecurring {
		if e.RecurringDayOfWeek == nil {
			return fmt.Errorf("%w: recurringDayOfWeek is required for recurring exception", ErrInvalidInput)
		}
		if *e.RecurringDayOfWeek < time.Sunday || *e.RecurringDayOfWeek > time.Saturday {
			return fmt.Errorf("%w: recurringDayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
	} else if e.Date == nil {
		return fmt.Errorf("%w: date is required for one-off exception", ErrInvalidInput)
	}

	if (e.StartTime == nil) != (e.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}
	if r, ok := e.Range(); ok {
		if err := e.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		if err := e.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		if r.IsEmpty() {
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}
	}
	return nil
}

// ExceptionFilter selects exceptions of a stylist. Recurring exceptions
// are always returned, the date range applies to one-off exceptions only.
type ExceptionFilter struct {
	StylistID string
	From      *time.Time
	To        *time.Time
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
