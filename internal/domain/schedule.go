package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// DayWindow is the working window of a single weekday. A window missing
// either bound means the stylist does not work that day.
type DayWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// IsWorking reports whether both bounds are set
func (w DayWindow) IsWorking() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Range returns the window as minutes since midnight
func (w DayWindow) Range() TimeRange {
	return TimeRange{Start: w.Start.Minutes(), End: w.End.Minutes()}
}

// WorkingSchedule is the weekly availability of one stylist.
// Days is indexed by time.Weekday (Sunday = 0).
type WorkingSchedule struct {
	ID                   string
	StylistID            string
	Days                 [7]DayWindow
	SlotDurationMinutes  int
	BufferTimeMinutes    int
	MinimumNoticeMinutes int
	MaxAdvanceDays       int
	// AllowMultipleClients is stored but not enforced
	AllowMultipleClients bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewWorkingSchedule returns a schedule with default settings and no working days
func NewWorkingSchedule(stylistID string) *WorkingSchedule {
	return &WorkingSchedule{
		StylistID:            stylistID,
		SlotDurationMinutes:  DefaultSlotDurationMinutes,
		BufferTimeMinutes:    DefaultBufferTimeMinutes,
		MinimumNoticeMinutes: DefaultMinimumNoticeMinutes,
		MaxAdvanceDays:       DefaultMaxAdvanceDays,
		AllowMultipleClients: DefaultAllowMultipleClients,
	}
}

// WindowFor returns the working window for the weekday of date
func (s *WorkingSchedule) WindowFor(date time.Time) DayWindow {
	return s.Days[date.Weekday()]
}

// Validate checks setting ranges and window formats
func (s *WorkingSchedule) Validate() error {
	if err := inRange("slotDurationMinutes", s.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes); err != nil {
		return err
	}
	if err := inRange("bufferTimeMinutes", s.BufferTimeMinutes, MinBufferTimeMinutes, MaxBufferTimeMinutes); err != nil {
		return err
	}
	if err := inRange("minimumNoticeMinutes", s.MinimumNoticeMinutes, MinMinimumNoticeMinutes, MaxMinimumNoticeMinutes); err != nil {
		return err
	}
	if err := inRange("maxAdvanceDays", s.MaxAdvanceDays, MinMaxAdvanceDays, MaxMaxAdvanceDays); err != nil {
		return err
	}

	for day, w := range s.Days {
		for _, t := range []types.TimeString{w.Start, w.End} {
			if t.IsZero() {
				continue
			}
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidInput, time.Weekday(day), err)
			}
		}
	}
	return nil
}

// DayPatch updates one weekday. A nil field is left unchanged, an empty value clears it.
type DayPatch struct {
	Start *types.TimeString
	End   *types.TimeString
}

// SchedulePatch is a partial update of a schedule; nil fields are left unchanged
type SchedulePatch struct {
	Days                 [7]DayPatch
	SlotDurationMinutes  *int
	BufferTimeMinutes    *int
	MinimumNoticeMinutes *int
	MaxAdvanceDays       *int
	AllowMultipleClients *bool
}

// Apply merges the provided fields of p into s
func (s *WorkingSchedule) Apply(p SchedulePatch) {
	for day, dp := range p.Days {
		if dp.Start != nil {
			s.Days[day].Start = *dp.Start
		}
		if dp.End != nil {
			s.Days[day].End = *dp.End
		}
	}
	if p.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *p.SlotDurationMinutes
	}
	if p.BufferTimeMinutes != nil {
		s.BufferTimeMinutes = *p.BufferTimeMinutes
	}
	if p.MinimumNoticeMinutes != nil {
		s.MinimumNoticeMinutes = *p.MinimumNoticeMinutes
	}
	if p.MaxAdvanceDays != nil {
		s.MaxAdvanceDays = *p.MaxAdvanceDays
	}
	if p.AllowMultipleClients != nil {
		s.AllowMultipleClients = *p.AllowMultipleClients
	}
}

func inRange(name string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidInput, name, min, max, v)
	}
	return nil
}
