package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	exceptionRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/exception"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StylistBooking/internal/service/availability/models"
)

// Service сервис управления расписанием и исключениями стилиста
type Service struct {
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// SetAvailability создает или частично обновляет расписание стилиста.
// Если расписания нет, изменения накладываются на значения по умолчанию.
func (s *Service) SetAvailability(ctx context.Context, actor domain.Actor, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("SetAvailability: stylist=%s", actor.UserID)

	// 1. Проверяем права доступа (только стилист)
	if err := s.checkStylist("SetAvailability", actor); err != nil {
		return nil, err
	}

	// 2. Разбираем запрос
	patch, err := req.ToPatch()
	if err != nil {
		s.logger.Warn("SetAvailability: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved *domain.WorkingSchedule

	// 3. Читаем текущее, применяем патч и сохраняем
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		schedule, err := s.scheduleRepo.GetByStylistID(txCtx, actor.UserID)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				s.logger.Error("SetAvailability: failed to get schedule: %v", err)
				return fmt.Errorf("%w: SetAvailability - get schedule: %v", ErrInternal, err)
			}
			s.logger.Info("SetAvailability: creating schedule for stylist=%s", actor.UserID)
			schedule = domain.NewWorkingSchedule(actor.UserID)
		}

		schedule.Apply(patch)

		if err := schedule.Validate(); err != nil {
			s.logger.Warn("SetAvailability: validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		saved, err = s.scheduleRepo.Upsert(txCtx, schedule)
		if err != nil {
			s.logger.Error("SetAvailability: failed to save schedule: %v", err)
			return fmt.Errorf("%w: SetAvailability - save schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetAvailability: saved schedule id=%s for stylist=%s", saved.ID, actor.UserID)
	return models.FromDomainSchedule(saved), nil
}

// GetAvailability возвращает расписание стилиста
func (s *Service) GetAvailability(ctx context.Context, stylistID string) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: stylist=%s", stylistID)

	schedule, err := s.scheduleRepo.GetByStylistID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetAvailability: schedule for stylist=%s not found", stylistID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: GetAvailability - get schedule: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// CreateException создает исключение расписания стилиста
func (s *Service) CreateException(ctx context.Context, actor domain.Actor, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: stylist=%s, recurring=%t", actor.UserID, req.IsRecurring)

	if err := s.checkStylist("CreateException", actor); err != nil {
		return nil, err
	}

	exc, err := req.ToDomain(actor.UserID)
	if err != nil {
		s.logger.Warn("CreateException: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := exc.Validate(); err != nil {
		s.logger.Warn("CreateException: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if exc.Reason != nil && len(*exc.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	created, err := s.exceptionRepo.Create(ctx, exc)
	if err != nil {
		s.logger.Error("CreateException: failed to create exception: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: created exception id=%s", created.ID)
	resp := models.FromDomainException(created)
	return &resp, nil
}

// ListExceptions возвращает исключения стилиста. Диапазон дат ограничивает только
// разовые исключения, повторяющиеся возвращаются всегда.
func (s *Service) ListExceptions(ctx context.Context, actor domain.Actor, from, to *time.Time) (*models.ExceptionListResponse, error) {
	s.logger.Info("ListExceptions: stylist=%s", actor.UserID)

	if err := s.checkStylist("ListExceptions", actor); err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	exceptions, err := s.exceptionRepo.List(ctx, domain.ExceptionFilter{
		StylistID: actor.UserID,
		From:      from,
		To:        to,
	})
	if err != nil {
		s.logger.Error("ListExceptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExceptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExceptionList(exceptions), nil
}

// DeleteException удаляет исключение; чужое исключение считается не найденным
func (s *Service) DeleteException(ctx context.Context, actor domain.Actor, id string) error {
	s.logger.Info("DeleteException: id=%s, stylist=%s", id, actor.UserID)

	if err := s.checkStylist("DeleteException", actor); err != nil {
		return err
	}

	if err := s.exceptionRepo.Delete(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%s not found for stylist=%s", id, actor.UserID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error: %v", err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: deleted exception id=%s", id)
	return nil
}

func (s *Service) checkStylist(op string, actor domain.Actor) error {
	if actor.Role != domain.RoleProvider {
		s.logger.Warn("%s: user=%s is not a stylist", op, actor.UserID)
		return ErrAccessDenied
	}
	return nil
}
