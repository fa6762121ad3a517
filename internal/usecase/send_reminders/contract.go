package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	// MarkReminderSent возвращает false, если напоминание уже отмечено
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
}

// Sender синхронно отправляет напоминание клиенту
type Sender interface {
	SendReminder(ctx context.Context, booking *domain.Booking) error
}

// Limiter ограничивает частоту отправки
type Limiter interface {
	Wait(ctx context.Context) error
}

// Metrics счётчики напоминаний
type Metrics interface {
	IncReminder(ok bool)
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
