package availability

import (
	"context"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих расписаний
type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID string) (*domain.WorkingSchedule, error)
	Upsert(ctx context.Context, schedule *domain.WorkingSchedule) (*domain.WorkingSchedule, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error)
	List(ctx context.Context, filter domain.ExceptionFilter) ([]*domain.ScheduleException, error)
	Delete(ctx context.Context, id, stylistID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
