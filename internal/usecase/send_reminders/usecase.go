package send_reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
)

// UseCase use case рассылки напоминаний о записях на завтра
type UseCase struct {
	bookingRepo  BookingRepository
	sender       Sender
	limiter      Limiter
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	sender Sender,
	limiter Limiter,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		sender:       sender,
		limiter:      limiter,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Run запускает обход каждые interval до отмены контекста
func (uc *UseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	uc.logger.Info("SendReminders: started, interval=%s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := uc.Execute(ctx); err != nil && ctx.Err() == nil {
			uc.logger.Error("SendReminders: sweep failed: %v", err)
		}

		select {
		case <-ctx.Done():
			uc.logger.Info("SendReminders: stopped")
			return
		case <-ticker.C:
		}
	}
}

// Execute отправляет напоминания по подтверждённым записям на завтра,
// для которых напоминание ещё не отправлялось
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	tomorrow := tomorrowOf(uc.timeProvider.Now())

	// 1. Подтверждённые записи на завтра без отметки
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingFilter{
		Date:            &tomorrow,
		Statuses:        []domain.BookingStatus{domain.StatusConfirmed},
		ReminderPending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	result := &Result{Found: len(bookings)}
	if len(bookings) == 0 {
		return result, nil
	}

	uc.logger.Info("SendReminders: found %d bookings for %s", len(bookings), tomorrow.Format(domain.DateFormat))

	// 2. Отправляем с ограничением частоты
	for _, booking := range bookings {
		if err := uc.limiter.Wait(ctx); err != nil {
			return result, err
		}

		sent, err := uc.deliver(ctx, booking)
		switch {
		case err != nil:
			result.Failed++
		case sent:
			result.Sent++
		default:
			result.Skipped++
		}
	}

	uc.logger.Info("SendReminders: sent=%d, failed=%d, skipped=%d", result.Sent, result.Failed, result.Skipped)

	return result, nil
}

// SendOne отправляет напоминание по одной записи по запросу стилиста или администратора
func (uc *UseCase) SendOne(ctx context.Context, bookingID string, actor domain.Actor) error {
	uc.logger.Info("SendReminder: booking=%s, actor=%s", bookingID, actor.UserID)

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && !(actor.Role == domain.RoleProvider && booking.StylistID == actor.UserID) {
		uc.logger.Warn("SendReminder: access denied for user=%s to booking id=%s", actor.UserID, bookingID)
		return ErrAccessDenied
	}
	if booking.Status != domain.StatusConfirmed {
		return ErrNotConfirmed
	}

	if _, err := uc.deliver(ctx, booking); err != nil {
		return err
	}
	return nil
}

// deliver отправляет напоминание и отмечает его. Отметка ставится только после
// успешной отправки, поэтому неудачные повторяются на следующем обходе.
func (uc *UseCase) deliver(ctx context.Context, booking *domain.Booking) (bool, error) {
	if err := uc.sender.SendReminder(ctx, booking); err != nil {
		uc.metrics.IncReminder(false)
		uc.logger.Warn("SendReminders: failed to send reminder for booking id=%s: %v", booking.ID, err)
		return false, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	uc.metrics.IncReminder(true)

	marked, err := uc.bookingRepo.MarkReminderSent(ctx, booking.ID, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("SendReminders: failed to mark booking id=%s: %v", booking.ID, err)
		return false, fmt.Errorf("%w: failed to mark reminder: %v", ErrInternal, err)
	}
	if !marked {
		uc.logger.Info("SendReminders: booking id=%s already marked", booking.ID)
	}

	return marked, nil
}

// tomorrowOf возвращает завтрашний календарный день в зоне now
func tomorrowOf(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
