package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// List получает бронирования по фильтру
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория рабочих расписаний
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID string) (*domain.WorkingSchedule, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	// ListForDate получает разовые исключения на дату и повторяющиеся на её день недели
	ListForDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.ScheduleException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
