package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error
}

// Directory источник данных о пользователях и стилистах
type Directory interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetStylistIfApproved(ctx context.Context, userID string) (*domain.Stylist, error)
}

// Notifier уведомления об изменении записи
type Notifier interface {
	NotifyBookingCancelled(booking *domain.Booking)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
