package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/pkg/ptr"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

func TestWorkingSchedule_Defaults(t *testing.T) {
	s := NewWorkingSchedule("stylist-1")
	assert.Equal(t, 60, s.SlotDurationMinutes)
	assert.Equal(t, 15, s.BufferTimeMinutes)
	assert.Equal(t, 120, s.MinimumNoticeMinutes)
	assert.Equal(t, 90, s.MaxAdvanceDays)
	assert.True(t, s.AllowMultipleClients)
	assert.NoError(t, s.Validate())
}

func TestWorkingSchedule_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *WorkingSchedule)
	}{
		{"slot too short", func(s *WorkingSchedule) { s.SlotDurationMinutes = 10 }},
		{"slot too long", func(s *WorkingSchedule) { s.SlotDurationMinutes = 481 }},
		{"negative buffer", func(s *WorkingSchedule) { s.BufferTimeMinutes = -1 }},
		{"buffer too long", func(s *WorkingSchedule) { s.BufferTimeMinutes = 121 }},
		{"notice too short", func(s *WorkingSchedule) { s.MinimumNoticeMinutes = 29 }},
		{"advance zero", func(s *WorkingSchedule) { s.MaxAdvanceDays = 0 }},
		{"advance too far", func(s *WorkingSchedule) { s.MaxAdvanceDays = 366 }},
		{"bad window", func(s *WorkingSchedule) { s.Days[time.Monday] = DayWindow{Start: "9am", End: "12:00"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWorkingSchedule("stylist-1")
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

func TestWorkingSchedule_ApplyMergesProvidedFields(t *testing.T) {
	s := NewWorkingSchedule("stylist-1")
	s.Days[time.Tuesday] = DayWindow{Start: "10:00", End: "18:00"}

	var patch SchedulePatch
	patch.Days[time.Monday] = DayPatch{Start: ptr.Ptr(types.TimeString("09:00")), End: ptr.Ptr(types.TimeString("12:00"))}
	patch.Days[time.Tuesday] = DayPatch{End: ptr.Ptr(types.TimeString(""))}
	patch.BufferTimeMinutes = ptr.Ptr(0)

	s.Apply(patch)

	assert.Equal(t, DayWindow{Start: "09:00", End: "12:00"}, s.WindowFor(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Days[time.Tuesday].IsWorking())
	assert.Equal(t, 0, s.BufferTimeMinutes)
	assert.Equal(t, 60, s.SlotDurationMinutes, "untouched field keeps its value")
}

func TestScheduleException_Validate(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	monday := time.Monday
	badDay := time.Weekday(7)

	tests := []struct {
		name    string
		exc     ScheduleException
		wantErr bool
	}{
		{"full day on date", ScheduleException{Date: &date}, false},
		{"partial on date", ScheduleException{Date: &date, StartTime: ptr.Ptr(types.TimeString("12:00")), EndTime: ptr.Ptr(types.TimeString("13:00"))}, false},
		{"recurring", ScheduleException{IsRecurring: true, RecurringDayOfWeek: &monday}, false},
		{"only start", ScheduleException{Date: &date, StartTime: ptr.Ptr(types.TimeString("12:00"))}, true},
		{"only end", ScheduleException{Date: &date, EndTime: ptr.Ptr(types.TimeString("12:00"))}, true},
		{"no date", ScheduleException{}, true},
		{"recurring without day", ScheduleException{IsRecurring: true}, true},
		{"recurring bad day", ScheduleException{IsRecurring: true, RecurringDayOfWeek: &badDay}, true},
		{"reversed range", ScheduleException{Date: &date, StartTime: ptr.Ptr(types.TimeString("13:00")), EndTime: ptr.Ptr(types.TimeString("12:00"))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exc.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestScheduleException_AppliesTo(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	nextMonday := monday.AddDate(0, 0, 7)
	wd := time.Monday

	oneOff := ScheduleException{Date: &monday}
	assert.True(t, oneOff.AppliesTo(monday))
	assert.False(t, oneOff.AppliesTo(nextMonday))

	recurring := ScheduleException{IsRecurring: true, RecurringDayOfWeek: &wd}
	assert.True(t, recurring.AppliesTo(monday))
	assert.True(t, recurring.AppliesTo(nextMonday))
	assert.False(t, recurring.AppliesTo(tuesday))

	partial := ScheduleException{Date: &monday, StartTime: ptr.Ptr(types.TimeString("12:00")), EndTime: ptr.Ptr(types.TimeString("13:00"))}
	assert.True(t, partial.Blocks(monday, TimeRange{Start: 690, End: 750}))
	assert.False(t, partial.Blocks(monday, TimeRange{Start: 780, End: 840}))
	assert.False(t, partial.Blocks(tuesday, TimeRange{Start: 690, End: 750}))
}
