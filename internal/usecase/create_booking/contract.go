package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID string) (*domain.WorkingSchedule, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	ListForDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.ScheduleException, error)
}

// IdentityProvider стилисты и клиенты
type IdentityProvider interface {
	GetStylistIfApproved(ctx context.Context, userID string) (*domain.Stylist, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetOrCreateCustomerByPhone(ctx context.Context, phone string, firstName *string) (*domain.User, error)
}

// Locker блокировка дня стилиста на время проверки и вставки
type Locker interface {
	Lock(ctx context.Context, key string) (lock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомления о записи (не блокирует)
type Notifier interface {
	NotifyBookingCreated(booking *domain.Booking)
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingCreated(flow string)
	IncBookingConflict(flow string)
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
