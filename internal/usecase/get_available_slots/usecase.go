package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StylistBooking/internal/service/scheduling"
)

// UseCase use case для получения доступных слотов стилиста
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Минимальный срок и горизонт записи здесь не учитываются, их проверяет создание записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%s, date=%s", req.StylistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание стилиста
	schedule, err := uc.scheduleRepo.GetByStylistID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: schedule for stylist id=%s not found", req.StylistID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	response := &Response{
		Date:                req.Date,
		StylistID:           req.StylistID,
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		Slots:               []Slot{},
	}

	// 3. Выходной день: дальше ничего не читаем
	if !schedule.WindowFor(req.Date).IsWorking() {
		uc.logger.Info("GetAvailableSlots: stylist id=%s does not work on %s", req.StylistID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Исключения на дату
	exceptions, err := uc.exceptionRepo.ListForDate(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 5. Активные записи на дату
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingFilter{
		StylistID: &req.StylistID,
		Date:      &req.Date,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Считаем свободные слоты
	starts := scheduling.ComputeSlots(schedule, req.Date, exceptions, bookings)
	for _, start := range starts {
		end, err := start.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}
		response.Slots = append(response.Slots, Slot{StartTime: start, EndTime: end})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for stylist=%s, date=%s",
		len(response.Slots), req.StylistID, req.Date.Format(domain.DateFormat))

	return response, nil
}
