package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
	identityRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/identity"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StylistBooking/internal/service/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	identity      IdentityProvider
	locker        Locker
	txManager     TransactionManager
	notifier      Notifier
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	identity IdentityProvider,
	locker Locker,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		identity:      identity,
		locker:        locker,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает запись авторизованного клиента в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: stylist=%s, customer=%s, date=%s, time=%s-%s",
		req.StylistID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Стилист существует и одобрен
	if err := uc.checkStylist(ctx, req.StylistID); err != nil {
		return nil, err
	}

	// 3. Клиент существует
	customerID := req.CustomerID
	resolveCustomer := func(ctx context.Context) (string, error) {
		if _, err := uc.identity.GetUser(ctx, customerID); err != nil {
			if errors.Is(err, identityRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: customer id=%s not found", customerID)
				return "", ErrCustomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", customerID, err)
			return "", fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
		}
		return customerID, nil
	}

	return uc.reserve(ctx, FlowAuthenticated, req.StylistID, &req.Slot, resolveCustomer)
}

// ExecutePublic создает запись без авторизации. Клиент ищется по телефону
// или создаётся внутри той же транзакции, поэтому при отказе ничего не сохраняется.
func (uc *UseCase) ExecutePublic(ctx context.Context, req *PublicRequest) (*domain.Booking, error) {
	uc.logger.Info("CreatePublicBooking: stylist=%s, date=%s, time=%s-%s",
		req.StylistID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validatePublicRequest(req); err != nil {
		uc.logger.Warn("CreatePublicBooking: validation failed: %v", err)
		return nil, err
	}

	if err := uc.checkStylist(ctx, req.StylistID); err != nil {
		return nil, err
	}

	resolveCustomer := func(ctx context.Context) (string, error) {
		customer, err := uc.identity.GetOrCreateCustomerByPhone(ctx, req.CustomerPhone, req.CustomerName)
		if err != nil {
			uc.logger.Error("CreatePublicBooking: failed to get or create customer: %v", err)
			return "", fmt.Errorf("%w: failed to get or create customer: %w", ErrInternal, err)
		}
		return customer.ID, nil
	}

	return uc.reserve(ctx, FlowPublic, req.StylistID, &req.Slot, resolveCustomer)
}

func (uc *UseCase) checkStylist(ctx context.Context, stylistID string) error {
	if _, err := uc.identity.GetStylistIfApproved(ctx, stylistID); err != nil {
		if errors.Is(err, identityRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateBooking: stylist id=%s not found or not approved", stylistID)
			return ErrStylistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get stylist id=%s: %v", stylistID, err)
		return fmt.Errorf("%w: failed to get stylist: %w", ErrInternal, err)
	}
	return nil
}

// reserve проверяет и сохраняет запись под блокировкой дня стилиста
// в сериализуемой транзакции
func (uc *UseCase) reserve(
	ctx context.Context,
	flow string,
	stylistID string,
	slot *Slot,
	resolveCustomer func(ctx context.Context) (string, error),
) (*domain.Booking, error) {
	key := lock.BookingKey(stylistID, slot.Date)
	unlock, err := uc.locker.Lock(ctx, key)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire booking lock: %w", ErrInternal, err)
	}
	defer unlock()

	requested, _ := domain.NewTimeRange(slot.StartTime, slot.EndTime)

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now()

		customerID, err := resolveCustomer(txCtx)
		if err != nil {
			return err
		}

		schedule, err := uc.scheduleRepo.GetByStylistID(txCtx, stylistID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: stylist id=%s has no schedule", stylistID)
				return ErrNoSchedule
			}
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}

		exceptions, err := uc.exceptionRepo.ListForDate(txCtx, stylistID, slot.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get exceptions: %v", err)
			return fmt.Errorf("%w: failed to get exceptions: %w", ErrInternal, err)
		}

		// Активные записи дня под FOR UPDATE
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingFilter{
			StylistID: &stylistID,
			Date:      &slot.Date,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		err = scheduling.ValidateBooking(scheduling.BookingCheck{
			Schedule:   schedule,
			Date:       slot.Date,
			Range:      requested,
			Now:        now,
			Exceptions: exceptions,
			Bookings:   bookings,
		})
		if err != nil {
			uc.logger.Warn("CreateBooking: slot rejected: %v", err)
			return err
		}

		booking := &domain.Booking{
			StylistID:     stylistID,
			CustomerID:    customerID,
			BookingDate:   slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			Status:        domain.StatusPending,
			CustomerNotes: slot.CustomerNotes,
			DepositAmount: slot.DepositAmount,
			TotalAmount:   slot.TotalAmount,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				uc.logger.Warn("CreateBooking: overlap rejected by database: %v", err)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.metrics.IncBookingConflict(flow)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(flow)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	uc.notifier.NotifyBookingCreated(result)

	return result, nil
}
