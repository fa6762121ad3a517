package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
	identityRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/identity"
	"github.com/m04kA/SMC-StylistBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	directory    Directory
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	directory Directory,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		directory:    directory,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Клиент видит свою запись, стилист записи к себе, администратор любые
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !canView(actor, booking) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetPublic возвращает ограниченное представление записи без проверки прав
func (s *Service) GetPublic(ctx context.Context, id string) (*models.PublicBookingResponse, error) {
	s.logger.Info("GetPublic: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetPublic", id)
	if err != nil {
		return nil, err
	}

	resp := &models.PublicBookingResponse{
		ID:          booking.ID,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		StartTime:   booking.StartTime.String(),
		EndTime:     booking.EndTime.String(),
		Status:      string(booking.Status),
	}

	// Профиль может быть уже не одобрен: тогда берём только имя пользователя
	stylist, err := s.directory.GetStylistIfApproved(ctx, booking.StylistID)
	switch {
	case err == nil:
		resp.StylistName = stylist.DisplayName()
		resp.SalonAddress = stylist.SalonAddress
	case errors.Is(err, identityRepo.ErrStylistNotFound):
		user, err := s.directory.GetUser(ctx, booking.StylistID)
		if err != nil && !errors.Is(err, identityRepo.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: GetPublic - get stylist user: %v", ErrInternal, err)
		}
		if user != nil {
			resp.StylistName = user.FullName()
		}
	default:
		s.logger.Error("GetPublic: failed to get stylist id=%s: %v", booking.StylistID, err)
		return nil, fmt.Errorf("%w: GetPublic - get stylist: %v", ErrInternal, err)
	}

	customer, err := s.directory.GetUser(ctx, booking.CustomerID)
	if err != nil && !errors.Is(err, identityRepo.ErrUserNotFound) {
		s.logger.Error("GetPublic: failed to get customer id=%s: %v", booking.CustomerID, err)
		return nil, fmt.Errorf("%w: GetPublic - get customer: %v", ErrInternal, err)
	}
	if customer != nil {
		resp.CustomerName = customer.FullName()
		resp.CustomerPhone = customer.PhoneNumber
	}

	return resp, nil
}

// ListForCustomer получает записи клиента, опционально по статусу
func (s *Service) ListForCustomer(ctx context.Context, actor domain.Actor, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListForCustomer: fetching bookings for user=%s, status=%v", actor.UserID, status)

	filter := domain.BookingFilter{CustomerID: &actor.UserID}
	return s.list(ctx, "ListForCustomer", filter, status)
}

// ListForStylist получает записи к стилисту, опционально по статусу
func (s *Service) ListForStylist(ctx context.Context, actor domain.Actor, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListForStylist: fetching bookings for stylist=%s, status=%v", actor.UserID, status)

	if actor.Role != domain.RoleProvider && !actor.IsAdmin() {
		s.logger.Warn("ListForStylist: user=%s is not a stylist", actor.UserID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingFilter{StylistID: &actor.UserID}
	return s.list(ctx, "ListForStylist", filter, status)
}

// Update частично обновляет запись: статус (по машине состояний), заметки стилиста,
// причину отмены и суммы. Клиент может только отменить свою запись.
func (s *Service) Update(ctx context.Context, id string, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s by user=%s", id, actor.UserID)

	// 1. Валидация входных данных
	next, err := validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var (
		updated   *domain.Booking
		cancelled bool
	)

	// 2. Читаем запись под блокировкой и применяем изменения
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Update", id)
		if err != nil {
			return err
		}

		if !canUpdate(actor, booking, req, next) {
			s.logger.Warn("Update: access denied for user=%s to booking id=%s", actor.UserID, id)
			return ErrAccessDenied
		}

		previous := booking.Status

		if req.StylistNotes != nil {
			booking.StylistNotes = req.StylistNotes
		}
		if req.DepositAmount != nil {
			booking.DepositAmount = req.DepositAmount
		}
		if req.TotalAmount != nil {
			booking.TotalAmount = req.TotalAmount
		}
		if req.CancellationReason != nil {
			booking.CancellationReason = req.CancellationReason
		}

		if next != nil {
			party, err := cancelParty(actor, req.CancelledBy)
			if err != nil {
				return err
			}
			if err := booking.Transition(*next, s.timeProvider.Now(), party); err != nil {
				s.logger.Warn("Update: booking id=%s: %v", id, err)
				return err
			}
			cancelled = *next == domain.StatusCancelled
		}

		if err := s.bookingRepo.Update(txCtx, booking, previous); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				s.logger.Warn("Update: booking id=%s changed concurrently", id)
				return ErrStatusChanged
			}
			s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Уведомляем после фиксации
	if cancelled {
		s.notifier.NotifyBookingCancelled(updated)
	}

	s.logger.Info("Update: successfully updated booking id=%s, status=%s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет запись от имени пользователя. Сторона отмены определяется по роли.
func (s *Service) Cancel(ctx context.Context, id string, actor domain.Actor, reason *string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, actor.UserID)

	status := string(domain.StatusCancelled)
	resp, err := s.Update(ctx, id, actor, &models.UpdateBookingRequest{
		Status:             &status,
		CancellationReason: reason,
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil, fmt.Errorf("%w: %v", ErrCannotCancel, err)
	}
	return resp, err
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingFilter, status *string) (*models.BookingListResponse, error) {
	if status != nil {
		parsed, err := domain.ParseBookingStatus(*status)
		if err != nil {
			s.logger.Warn("%s: invalid status=%s", op, *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.BookingStatus{parsed}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
