package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/ptr"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

func TestValidateBooking(t *testing.T) {
	schedule := mondaySchedule("09:00", "18:00", 60, 0)
	schedule.MinimumNoticeMinutes = 120
	schedule.MaxAdvanceDays = 30

	// a week before the Monday
	now := monday.AddDate(0, 0, -7).Add(12 * time.Hour)
	nineToTen := domain.TimeRange{Start: 9 * 60, End: 10 * 60}

	tests := []struct {
		name     string
		check    BookingCheck
		wantErr  error
		wantKind error
	}{
		{
			name:  "valid",
			check: BookingCheck{Date: monday, Range: nineToTen, Now: now},
		},
		{
			name:     "day off",
			check:    BookingCheck{Date: monday.AddDate(0, 0, 1), Range: nineToTen, Now: now},
			wantErr:  ErrDayOff,
			wantKind: domain.ErrInvalidSchedule,
		},
		{
			name:     "outside working hours",
			check:    BookingCheck{Date: monday, Range: domain.TimeRange{Start: 17 * 60, End: 19 * 60}, Now: now},
			wantErr:  ErrOutsideWorkingHours,
			wantKind: domain.ErrInvalidSchedule,
		},
		{
			name:     "start ten minutes from now",
			check:    BookingCheck{Date: monday, Range: domain.TimeRange{Start: 10 * 60, End: 11 * 60}, Now: monday.Add(9*time.Hour + 50*time.Minute)},
			wantErr:  ErrInsufficientNotice,
			wantKind: domain.ErrInvalidSchedule,
		},
		{
			name:     "in the past",
			check:    BookingCheck{Date: monday, Range: nineToTen, Now: monday.AddDate(0, 0, 1)},
			wantErr:  ErrInsufficientNotice,
			wantKind: domain.ErrInvalidSchedule,
		},
		{
			name:     "too far in advance",
			check:    BookingCheck{Date: monday, Range: nineToTen, Now: monday.AddDate(0, 0, -31)},
			wantErr:  ErrTooFarInAdvance,
			wantKind: domain.ErrInvalidSchedule,
		},
		{
			name: "partial exception",
			check: BookingCheck{Date: monday, Range: nineToTen, Now: now, Exceptions: []*domain.ScheduleException{{
				Date: &monday, StartTime: ptr.Ptr(types.TimeString("09:30")), EndTime: ptr.Ptr(types.TimeString("10:30")),
			}}},
			wantErr:  ErrBlockedByException,
			wantKind: domain.ErrConflict,
		},
		{
			name:     "full day exception",
			check:    BookingCheck{Date: monday, Range: nineToTen, Now: now, Exceptions: []*domain.ScheduleException{{Date: &monday}}},
			wantErr:  ErrBlockedByException,
			wantKind: domain.ErrConflict,
		},
		{
			name:     "overlapping booking",
			check:    BookingCheck{Date: monday, Range: nineToTen, Now: now, Bookings: []*domain.Booking{booking("other", "09:30", "10:30", domain.StatusPending)}},
			wantErr:  ErrOverlapsBooking,
			wantKind: domain.ErrConflict,
		},
		{
			name:  "touching booking",
			check: BookingCheck{Date: monday, Range: nineToTen, Now: now, Bookings: []*domain.Booking{booking("other", "10:00", "11:00", domain.StatusConfirmed)}},
		},
		{
			name: "excluded booking does not conflict with itself",
			check: BookingCheck{Date: monday, Range: nineToTen, Now: now, ExcludeID: ptr.Ptr("self"),
				Bookings: []*domain.Booking{booking("self", "09:30", "10:30", domain.StatusConfirmed)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check.Schedule = schedule
			err := ValidateBooking(tt.check)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestValidateBooking_WallTimesInClockZone(t *testing.T) {
	schedule := mondaySchedule("09:00", "18:00", 60, 0)
	schedule.MinimumNoticeMinutes = 120
	schedule.MaxAdvanceDays = 30

	// Дата разобрана как полночь UTC, часы сервера в другой зоне
	date, err := time.Parse(domain.DateFormat, "2026-10-19")
	assert.NoError(t, err)

	newYork := time.FixedZone("EST", -5*60*60)
	tehran := time.FixedZone("IRST", 3*60*60+30*60)

	tests := []struct {
		name    string
		now     time.Time
		r       domain.TimeRange
		wantErr error
	}{
		{
			name: "five hours ahead west of UTC",
			now:  time.Date(2026, 10, 19, 8, 0, 0, 0, newYork),
			r:    domain.TimeRange{Start: 13 * 60, End: 14 * 60},
		},
		{
			name:    "one hour ahead west of UTC",
			now:     time.Date(2026, 10, 19, 12, 0, 0, 0, newYork),
			r:       domain.TimeRange{Start: 13 * 60, End: 14 * 60},
			wantErr: ErrInsufficientNotice,
		},
		{
			name:    "already past east of UTC",
			now:     time.Date(2026, 10, 19, 11, 0, 0, 0, tehran),
			r:       domain.TimeRange{Start: 10 * 60, End: 11 * 60},
			wantErr: ErrInsufficientNotice,
		},
		{
			name: "three hours ahead east of UTC",
			now:  time.Date(2026, 10, 19, 11, 0, 0, 0, tehran),
			r:    domain.TimeRange{Start: 14 * 60, End: 15 * 60},
		},
		{
			name:    "horizon counted from the local day",
			now:     time.Date(2026, 9, 19, 8, 0, 0, 0, newYork),
			r:       domain.TimeRange{Start: 9 * 60, End: 10 * 60},
			wantErr: ErrTooFarInAdvance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBooking(BookingCheck{Schedule: schedule, Date: date, Range: tt.r, Now: tt.now})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
