package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// Request модели

// SetAvailabilityRequest частичное обновление недельного расписания.
// Не переданное поле не меняется, пустая строка делает границу дня пустой.
type SetAvailabilityRequest struct {
	SundayStart    *string `json:"sundayStart,omitempty"`
	SundayEnd      *string `json:"sundayEnd,omitempty"`
	MondayStart    *string `json:"mondayStart,omitempty"`
	MondayEnd      *string `json:"mondayEnd,omitempty"`
	TuesdayStart   *string `json:"tuesdayStart,omitempty"`
	TuesdayEnd     *string `json:"tuesdayEnd,omitempty"`
	WednesdayStart *string `json:"wednesdayStart,omitempty"`
	WednesdayEnd   *string `json:"wednesdayEnd,omitempty"`
	ThursdayStart  *string `json:"thursdayStart,omitempty"`
	ThursdayEnd    *string `json:"thursdayEnd,omitempty"`
	FridayStart    *string `json:"fridayStart,omitempty"`
	FridayEnd      *string `json:"fridayEnd,omitempty"`
	SaturdayStart  *string `json:"saturdayStart,omitempty"`
	SaturdayEnd    *string `json:"saturdayEnd,omitempty"`

	SlotDurationMinutes  *int  `json:"slotDurationMinutes,omitempty"`
	BufferTimeMinutes    *int  `json:"bufferTimeMinutes,omitempty"`
	MinimumNoticeMinutes *int  `json:"minimumNoticeMinutes,omitempty"`
	MaxAdvanceDays       *int  `json:"maxAdvanceDays,omitempty"`
	AllowMultipleClients *bool `json:"allowMultipleClients,omitempty"`
}

// days поля запроса по дням недели, индекс time.Weekday
func (r *SetAvailabilityRequest) days() [7][2]*string {
	return [7][2]*string{
		time.Sunday:    {r.SundayStart, r.SundayEnd},
		time.Monday:    {r.MondayStart, r.MondayEnd},
		time.Tuesday:   {r.TuesdayStart, r.TuesdayEnd},
		time.Wednesday: {r.WednesdayStart, r.WednesdayEnd},
		time.Thursday:  {r.ThursdayStart, r.ThursdayEnd},
		time.Friday:    {r.FridayStart, r.FridayEnd},
		time.Saturday:  {r.SaturdayStart, r.SaturdayEnd},
	}
}

// ToPatch конвертирует запрос в domain патч с разбором времени
func (r *SetAvailabilityRequest) ToPatch() (domain.SchedulePatch, error) {
	patch := domain.SchedulePatch{
		SlotDurationMinutes:  r.SlotDurationMinutes,
		BufferTimeMinutes:    r.BufferTimeMinutes,
		MinimumNoticeMinutes: r.MinimumNoticeMinutes,
		MaxAdvanceDays:       r.MaxAdvanceDays,
		AllowMultipleClients: r.AllowMultipleClients,
	}

	for day, pair := range r.days() {
		start, err := parseBound(pair[0])
		if err != nil {
			return patch, fmt.Errorf("%sStart: %w", dayName(day), err)
		}
		end, err := parseBound(pair[1])
		if err != nil {
			return patch, fmt.Errorf("%sEnd: %w", dayName(day), err)
		}
		patch.Days[day] = domain.DayPatch{Start: start, End: end}
	}

	return patch, nil
}

// CreateExceptionRequest запрос на создание исключения расписания
type CreateExceptionRequest struct {
	Date               *string `json:"date,omitempty"` // "2025-10-15" для разового исключения
	IsRecurring        bool    `json:"isRecurring"`
	RecurringDayOfWeek *int    `json:"recurringDayOfWeek,omitempty"` // 0 = воскресенье
	StartTime          *string `json:"startTime,omitempty"`          // без пары времени - весь день
	EndTime            *string `json:"endTime,omitempty"`
	Reason             *string `json:"reason,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateExceptionRequest) ToDomain(stylistID string) (*domain.ScheduleException, error) {
	exc := &domain.ScheduleException{
		StylistID:   stylistID,
		IsRecurring: r.IsRecurring,
		Reason:      r.Reason,
	}

	if r.Date != nil {
		date, err := domain.ParseDate(*r.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be in format %s", domain.DateFormat)
		}
		exc.Date = &date
	}

	if r.RecurringDayOfWeek != nil {
		dow := time.Weekday(*r.RecurringDayOfWeek)
		exc.RecurringDayOfWeek = &dow
	}

	var err error
	if exc.StartTime, err = parseBound(r.StartTime); err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	if exc.EndTime, err = parseBound(r.EndTime); err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return exc, nil
}

// Response модели

// AvailabilityResponse недельное расписание стилиста
type AvailabilityResponse struct {
	ID        string `json:"id"`
	StylistID string `json:"stylistId"`

	SundayStart    *string `json:"sundayStart"`
	SundayEnd      *string `json:"sundayEnd"`
	MondayStart    *string `json:"mondayStart"`
	MondayEnd      *string `json:"mondayEnd"`
	TuesdayStart   *string `json:"tuesdayStart"`
	TuesdayEnd     *string `json:"tuesdayEnd"`
	WednesdayStart *string `json:"wednesdayStart"`
	WednesdayEnd   *string `json:"wednesdayEnd"`
	ThursdayStart  *string `json:"thursdayStart"`
	ThursdayEnd    *string `json:"thursdayEnd"`
	FridayStart    *string `json:"fridayStart"`
	FridayEnd      *string `json:"fridayEnd"`
	SaturdayStart  *string `json:"saturdayStart"`
	SaturdayEnd    *string `json:"saturdayEnd"`

	SlotDurationMinutes  int  `json:"slotDurationMinutes"`
	BufferTimeMinutes    int  `json:"bufferTimeMinutes"`
	MinimumNoticeMinutes int  `json:"minimumNoticeMinutes"`
	MaxAdvanceDays       int  `json:"maxAdvanceDays"`
	AllowMultipleClients bool `json:"allowMultipleClients"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExceptionResponse исключение расписания
type ExceptionResponse struct {
	ID                 string    `json:"id"`
	StylistID          string    `json:"stylistId"`
	Date               *string   `json:"date,omitempty"`
	IsRecurring        bool      `json:"isRecurring"`
	RecurringDayOfWeek *int      `json:"recurringDayOfWeek,omitempty"`
	StartTime          *string   `json:"startTime,omitempty"`
	EndTime            *string   `json:"endTime,omitempty"`
	Reason             *string   `json:"reason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ExceptionListResponse ответ со списком исключений
type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WorkingSchedule) *AvailabilityResponse {
	d := func(day time.Weekday) [2]*string {
		return [2]*string{bound(s.Days[day].Start), bound(s.Days[day].End)}
	}
	sun, mon, tue, wed, thu, fri, sat := d(time.Sunday), d(time.Monday), d(time.Tuesday),
		d(time.Wednesday), d(time.Thursday), d(time.Friday), d(time.Saturday)

	return &AvailabilityResponse{
		ID:                   s.ID,
		StylistID:            s.StylistID,
		SundayStart:          sun[0],
		SundayEnd:            sun[1],
		MondayStart:          mon[0],
		MondayEnd:            mon[1],
		TuesdayStart:         tue[0],
		TuesdayEnd:           tue[1],
		WednesdayStart:       wed[0],
		WednesdayEnd:         wed[1],
		ThursdayStart:        thu[0],
		ThursdayEnd:          thu[1],
		FridayStart:          fri[0],
		FridayEnd:            fri[1],
		SaturdayStart:        sat[0],
		SaturdayEnd:          sat[1],
		SlotDurationMinutes:  s.SlotDurationMinutes,
		BufferTimeMinutes:    s.BufferTimeMinutes,
		MinimumNoticeMinutes: s.MinimumNoticeMinutes,
		MaxAdvanceDays:       s.MaxAdvanceDays,
		AllowMultipleClients: s.AllowMultipleClients,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.ScheduleException) ExceptionResponse {
	resp := ExceptionResponse{
		ID:          e.ID,
		StylistID:   e.StylistID,
		IsRecurring: e.IsRecurring,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt,
	}
	if e.Date != nil {
		date := e.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if e.RecurringDayOfWeek != nil {
		dow := int(*e.RecurringDayOfWeek)
		resp.RecurringDayOfWeek = &dow
	}
	if e.StartTime != nil {
		resp.StartTime = bound(*e.StartTime)
	}
	if e.EndTime != nil {
		resp.EndTime = bound(*e.EndTime)
	}
	return resp
}

// FromDomainExceptionList конвертирует список domain моделей в DTO
func FromDomainExceptionList(exceptions []*domain.ScheduleException) *ExceptionListResponse {
	resp := &ExceptionListResponse{Exceptions: make([]ExceptionResponse, 0, len(exceptions))}
	for _, e := range exceptions {
		resp.Exceptions = append(resp.Exceptions, FromDomainException(e))
	}
	return resp
}

func parseBound(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	if *s == "" {
		var empty types.TimeString
		return &empty, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func bound(t types.TimeString) *string {
	if t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}

func dayName(day int) string {
	name := time.Weekday(day).String()
	return strings.ToLower(name[:1]) + name[1:]
}
