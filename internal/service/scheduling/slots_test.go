package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/ptr"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// 2026-03-02 is a Monday
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondaySchedule(start, end types.TimeString, slot, buffer int) *domain.WorkingSchedule {
	s := domain.NewWorkingSchedule("stylist-1")
	s.Days[time.Monday] = domain.DayWindow{Start: start, End: end}
	s.SlotDurationMinutes = slot
	s.BufferTimeMinutes = buffer
	return s
}

func booking(id string, start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, StylistID: "stylist-1", BookingDate: monday, StartTime: start, EndTime: end, Status: status}
}

func TestComputeSlots_Scenarios(t *testing.T) {
	schedule := mondaySchedule("09:00", "12:00", 60, 0)

	tests := []struct {
		name       string
		exceptions []*domain.ScheduleException
		bookings   []*domain.Booking
		want       []types.TimeString
	}{
		{
			name: "plain window",
			want: []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:     "confirmed booking removes its slot",
			bookings: []*domain.Booking{booking("b1", "10:00", "11:00", domain.StatusConfirmed)},
			want:     []types.TimeString{"09:00", "11:00"},
		},
		{
			name:       "full day exception",
			exceptions: []*domain.ScheduleException{{Date: &monday}},
			want:       []types.TimeString{},
		},
		{
			name: "cancelled and rescheduled bookings do not block",
			bookings: []*domain.Booking{
				booking("b1", "09:00", "10:00", domain.StatusCancelled),
				booking("b2", "10:00", "11:00", domain.StatusRescheduled),
				booking("b3", "11:00", "12:00", domain.StatusCompleted),
			},
			want: []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:     "pending booking blocks overlapping slots",
			bookings: []*domain.Booking{booking("b1", "09:30", "10:30", domain.StatusPending)},
			want:     []types.TimeString{"11:00"},
		},
		{
			name: "partial exception",
			exceptions: []*domain.ScheduleException{{
				Date:      &monday,
				StartTime: ptr.Ptr(types.TimeString("11:00")),
				EndTime:   ptr.Ptr(types.TimeString("11:30")),
			}},
			want: []types.TimeString{"09:00", "10:00"},
		},
		{
			name:       "recurring full day exception",
			exceptions: []*domain.ScheduleException{{IsRecurring: true, RecurringDayOfWeek: ptr.Ptr(time.Monday)}},
			want:       []types.TimeString{},
		},
		{
			name:       "recurring exception for another weekday",
			exceptions: []*domain.ScheduleException{{IsRecurring: true, RecurringDayOfWeek: ptr.Ptr(time.Tuesday)}},
			want:       []types.TimeString{"09:00", "10:00", "11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSlots(schedule, monday, tt.exceptions, tt.bookings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSlots_BufferAndTail(t *testing.T) {
	schedule := mondaySchedule("09:00", "12:00", 60, 15)

	got := ComputeSlots(schedule, monday, nil, nil)

	// 09:00, 10:15; 11:30 would end at 12:30 and is dropped
	assert.Equal(t, []types.TimeString{"09:00", "10:15"}, got)
}

func TestComputeSlots_EmptyWindows(t *testing.T) {
	t.Run("day off", func(t *testing.T) {
		schedule := mondaySchedule("09:00", "12:00", 60, 0)
		assert.Empty(t, ComputeSlots(schedule, monday.AddDate(0, 0, 1), nil, nil))
	})

	t.Run("missing end", func(t *testing.T) {
		schedule := mondaySchedule("09:00", "", 60, 0)
		assert.Empty(t, ComputeSlots(schedule, monday, nil, nil))
	})

	t.Run("start after end", func(t *testing.T) {
		schedule := mondaySchedule("12:00", "09:00", 60, 0)
		assert.Empty(t, ComputeSlots(schedule, monday, nil, nil))
	})

	t.Run("slot longer than window", func(t *testing.T) {
		schedule := mondaySchedule("09:00", "09:30", 60, 0)
		assert.Empty(t, ComputeSlots(schedule, monday, nil, nil))
	})
}

func TestComputeSlots_Properties(t *testing.T) {
	for _, tc := range []struct{ slot, buffer int }{{15, 0}, {30, 10}, {45, 15}, {60, 0}, {90, 30}, {120, 120}} {
		schedule := mondaySchedule("08:00", "20:00", tc.slot, tc.buffer)
		bookings := []*domain.Booking{booking("b1", "12:00", "13:00", domain.StatusConfirmed)}

		first := ComputeSlots(schedule, monday, nil, bookings)
		second := ComputeSlots(schedule, monday, nil, bookings)
		require.Equal(t, first, second, "idempotent")

		window := schedule.Days[time.Monday].Range()
		prev := -1
		for _, s := range first {
			r := domain.TimeRange{Start: s.Minutes(), End: s.Minutes() + tc.slot}
			assert.True(t, window.Contains(r), "slot %s inside window", s)
			assert.False(t, r.Overlaps(bookings[0].Range()), "slot %s overlaps booking", s)
			if prev >= 0 {
				assert.GreaterOrEqual(t, r.Start, prev+tc.slot+tc.buffer)
			}
			prev = r.Start
		}
	}
}

func TestComputeSlots_CancelReopensSlot(t *testing.T) {
	schedule := mondaySchedule("09:00", "12:00", 60, 0)
	b := booking("b1", "10:00", "11:00", domain.StatusConfirmed)

	assert.NotContains(t, ComputeSlots(schedule, monday, nil, []*domain.Booking{b}), types.TimeString("10:00"))

	party := domain.CancelledByCustomer
	require.NoError(t, b.Transition(domain.StatusCancelled, time.Now(), &party))

	assert.Contains(t, ComputeSlots(schedule, monday, nil, []*domain.Booking{b}), types.TimeString("10:00"))
}
