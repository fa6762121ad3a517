package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

var (
	// ErrDayOff стилист не работает в этот день недели
	ErrDayOff = fmt.Errorf("stylist does not work this day: %w", domain.ErrInvalidSchedule)

	// ErrOutsideWorkingHours запрошенный интервал выходит за рабочее окно дня
	ErrOutsideWorkingHours = fmt.Errorf("requested time is outside working hours: %w", domain.ErrInvalidSchedule)

	// ErrInsufficientNotice до начала записи меньше minimumNoticeMinutes
	ErrInsufficientNotice = fmt.Errorf("insufficient notice: %w", domain.ErrInvalidSchedule)

	// ErrTooFarInAdvance запись дальше maxAdvanceDays
	ErrTooFarInAdvance = fmt.Errorf("booking too far in advance: %w", domain.ErrInvalidSchedule)

	// ErrBlockedByException интервал пересекается с исключением расписания
	ErrBlockedByException = fmt.Errorf("time is blocked by schedule exception: %w", domain.ErrConflict)

	// ErrOverlapsBooking интервал пересекается с активной записью
	ErrOverlapsBooking = fmt.Errorf("time overlaps an existing booking: %w", domain.ErrConflict)
)
