package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// BookingCheck входные данные проверки интервала под запись
type BookingCheck struct {
	Schedule   *domain.WorkingSchedule
	Date       time.Time
	Range      domain.TimeRange
	Now        time.Time
	Exceptions []*domain.ScheduleException
	Bookings   []*domain.Booking
	// ExcludeID запись, которая переносится и не должна конфликтовать сама с собой
	ExcludeID *string
}

// ValidateBooking проверяет интервал в порядке: рабочий день, рабочее окно,
// минимальное время до записи, горизонт записи, исключения, пересечения с записями.
// Возвращает первую найденную ошибку.
func ValidateBooking(c BookingCheck) error {
	window := c.Schedule.WindowFor(c.Date)
	if !window.IsWorking() {
		return ErrDayOff
	}

	if !window.Range().Contains(c.Range) {
		return fmt.Errorf("%w: %s-%s", ErrOutsideWorkingHours, window.Start, window.End)
	}

	// День записи читается в зоне текущего времени, а не в зоне разобранной даты
	startsAt := domain.WallTime(c.Date, c.Range.Start, c.Now.Location())

	notice := time.Duration(c.Schedule.MinimumNoticeMinutes) * time.Minute
	if startsAt.Before(c.Now.Add(notice)) {
		return fmt.Errorf("%w: at least %d minutes required", ErrInsufficientNotice, c.Schedule.MinimumNoticeMinutes)
	}

	horizon := time.Duration(c.Schedule.MaxAdvanceDays) * 24 * time.Hour
	if startsAt.After(c.Now.Add(horizon)) {
		return fmt.Errorf("%w: at most %d days ahead", ErrTooFarInAdvance, c.Schedule.MaxAdvanceDays)
	}

	if blockedByException(c.Date, c.Range, c.Exceptions) {
		return ErrBlockedByException
	}

	if b := overlapsBooking(c.Range, c.Bookings, c.ExcludeID); b != nil {
		return fmt.Errorf("%w: booking %s %s-%s", ErrOverlapsBooking, b.ID, b.StartTime, b.EndTime)
	}

	return nil
}
