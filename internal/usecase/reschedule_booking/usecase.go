package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StylistBooking/internal/service/scheduling"
)

// UseCase use case для переноса подтверждённой записи
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	locker        Locker
	txManager     TransactionManager
	notifier      Notifier
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	locker Locker,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		locker:        locker,
		txManager:     txManager,
		notifier:      notifier,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute переносит запись: исходная становится rescheduled, на новое время
// создаётся подтверждённая запись со ссылкой на исходную
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, actor=%s, new date=%s, time=%s-%s",
		req.BookingID, req.Actor.UserID, req.NewDate.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Предварительная проверка записи и прав до захвата блокировки
	original, err := uc.loadBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !canReschedule(req.Actor, original) {
		uc.logger.Warn("RescheduleBooking: access denied for user=%s to booking id=%s", req.Actor.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}
	if original.Status != domain.StatusConfirmed {
		uc.logger.Warn("RescheduleBooking: booking id=%s has status=%s", req.BookingID, original.Status)
		return nil, ErrNotConfirmed
	}

	// 3. Блокируем новый день стилиста
	key := lock.BookingKey(original.StylistID, req.NewDate)
	unlock, err := uc.locker.Lock(ctx, key)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to lock %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire booking lock: %w", ErrInternal, err)
	}
	defer unlock()

	requested, _ := domain.NewTimeRange(req.StartTime, req.EndTime)

	var result Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now()

		// Перечитываем запись под FOR UPDATE
		current, err := uc.loadBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}
		if current.Status != domain.StatusConfirmed {
			return ErrNotConfirmed
		}

		schedule, err := uc.scheduleRepo.GetByStylistID(txCtx, current.StylistID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrNoSchedule
			}
			uc.logger.Error("RescheduleBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}

		exceptions, err := uc.exceptionRepo.ListForDate(txCtx, current.StylistID, req.NewDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get exceptions: %v", err)
			return fmt.Errorf("%w: failed to get exceptions: %w", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingFilter{
			StylistID: &current.StylistID,
			Date:      &req.NewDate,
			Statuses:  domain.ActiveStatuses,
			ExcludeID: &current.ID,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// Та же последовательность проверок, что и при создании; исходная запись не мешает сама себе
		err = scheduling.ValidateBooking(scheduling.BookingCheck{
			Schedule:   schedule,
			Date:       req.NewDate,
			Range:      requested,
			Now:        now,
			Exceptions: exceptions,
			Bookings:   bookings,
			ExcludeID:  &current.ID,
		})
		if err != nil {
			uc.logger.Warn("RescheduleBooking: new slot rejected: %v", err)
			return err
		}

		// Сначала освобождаем исходный интервал, иначе constraint отклонит пересекающийся перенос
		if err := current.Transition(domain.StatusRescheduled, now, nil); err != nil {
			return fmt.Errorf("%w: %v", ErrNotConfirmed, err)
		}
		if err := uc.bookingRepo.Update(txCtx, current, domain.StatusConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return ErrNotConfirmed
			}
			uc.logger.Error("RescheduleBooking: failed to update original booking: %v", err)
			return fmt.Errorf("%w: failed to update original booking: %w", ErrInternal, err)
		}

		confirmedAt := now
		originalID := current.ID
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			StylistID:       current.StylistID,
			CustomerID:      current.CustomerID,
			BookingDate:     req.NewDate,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Status:          domain.StatusConfirmed,
			DepositAmount:   current.DepositAmount,
			TotalAmount:     current.TotalAmount,
			CustomerNotes:   current.CustomerNotes,
			StylistNotes:    current.StylistNotes,
			ConfirmedAt:     &confirmedAt,
			RescheduledFrom: &originalID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				uc.logger.Warn("RescheduleBooking: overlap rejected by database: %v", err)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = Response{Original: current, Rescheduled: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s rescheduled to id=%s", result.Original.ID, result.Rescheduled.ID)

	uc.notifier.NotifyBookingRescheduled(result.Original, result.Rescheduled)

	return &result, nil
}

func (uc *UseCase) loadBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}
	return booking, nil
}
