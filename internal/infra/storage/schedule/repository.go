package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/psqlbuilder"
)

const table = "working_schedules"

// dayColumns пары колонок start/end, индекс совпадает с time.Weekday
var dayColumns = [7][2]string{
	time.Sunday:    {"sunday_start", "sunday_end"},
	time.Monday:    {"monday_start", "monday_end"},
	time.Tuesday:   {"tuesday_start", "tuesday_end"},
	time.Wednesday: {"wednesday_start", "wednesday_end"},
	time.Thursday:  {"thursday_start", "thursday_end"},
	time.Friday:    {"friday_start", "friday_end"},
	time.Saturday:  {"saturday_start", "saturday_end"},
}

var settingColumns = []string{
	"slot_duration_minutes",
	"buffer_time_minutes",
	"minimum_notice_minutes",
	"max_advance_days",
	"allow_multiple_clients",
}

// Repository репозиторий рабочих расписаний стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylistID возвращает расписание стилиста
func (r *Repository) GetByStylistID(ctx context.Context, stylistID string) (*domain.WorkingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns()...).
		From(table).
		Where(squirrel.Eq{"stylist_id": stylistID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistID - scan schedule: %w", ErrScanRow, err)
	}

	return schedule, nil
}

// Upsert создает или полностью перезаписывает расписание стилиста (одна строка на стилиста)
func (r *Repository) Upsert(ctx context.Context, schedule *domain.WorkingSchedule) (*domain.WorkingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	cols := []string{"id", "stylist_id"}
	values := []interface{}{schedule.ID, schedule.StylistID}
	for day, pair := range dayColumns {
		cols = append(cols, pair[0], pair[1])
		values = append(values, schedule.Days[day].Start, schedule.Days[day].End)
	}
	cols = append(cols, settingColumns...)
	values = append(values,
		schedule.SlotDurationMinutes,
		schedule.BufferTimeMinutes,
		schedule.MinimumNoticeMinutes,
		schedule.MaxAdvanceDays,
		schedule.AllowMultipleClients,
	)

	query, args, err := psqlbuilder.Insert(table).
		Columns(cols...).
		Values(values...).
		Suffix(upsertSuffix()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return schedule, nil
}

// upsertSuffix при конфликте по stylist_id обновляет все колонки кроме id
func upsertSuffix() string {
	suffix := "ON CONFLICT (stylist_id) DO UPDATE SET "
	first := true
	add := func(col string) {
		if !first {
			suffix += ", "
		}
		suffix += col + " = EXCLUDED." + col
		first = false
	}
	for _, pair := range dayColumns {
		add(pair[0])
		add(pair[1])
	}
	for _, col := range settingColumns {
		add(col)
	}
	return suffix + ", updated_at = NOW() RETURNING id, created_at, updated_at"
}

func selectColumns() []string {
	cols := []string{"id", "stylist_id"}
	for _, pair := range dayColumns {
		cols = append(cols, pair[0], pair[1])
	}
	cols = append(cols, settingColumns...)
	return append(cols, "created_at", "updated_at")
}

func scanSchedule(row interface{ Scan(dest ...interface{}) error }) (*domain.WorkingSchedule, error) {
	var s domain.WorkingSchedule

	dest := []interface{}{&s.ID, &s.StylistID}
	for day := range dayColumns {
		dest = append(dest, &s.Days[day].Start, &s.Days[day].End)
	}
	dest = append(dest,
		&s.SlotDurationMinutes,
		&s.BufferTimeMinutes,
		&s.MinimumNoticeMinutes,
		&s.MaxAdvanceDays,
		&s.AllowMultipleClients,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}
