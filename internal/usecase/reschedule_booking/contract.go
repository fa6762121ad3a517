package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error
}

// ScheduleRepository интерфейс репозитория рабочих расписаний
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID string) (*domain.WorkingSchedule, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	ListForDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.ScheduleException, error)
}

// Locker интерфейс блокировки дня стилиста
type Locker interface {
	Lock(ctx context.Context, key string) (lock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомление о переносе
type Notifier interface {
	NotifyBookingRescheduled(original, rescheduled *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
