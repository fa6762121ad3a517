package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

const table = "schedule_exceptions"

var columns = []string{
	"id",
	"stylist_id",
	"date",
	"is_recurring",
	"recurring_day_of_week",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий исключений расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет исключение
func (r *Repository) Create(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if exc.ID == "" {
		exc.ID = uuid.NewString()
	}

	var date interface{}
	if exc.Date != nil {
		date = exc.Date.Format(domain.DateFormat)
	}
	var dow interface{}
	if exc.RecurringDayOfWeek != nil {
		dow = int(*exc.RecurringDayOfWeek)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "stylist_id", "date", "is_recurring", "recurring_day_of_week", "start_time", "end_time", "reason").
		Values(exc.ID, exc.StylistID, date, exc.IsRecurring, dow, exc.StartTime, exc.EndTime, exc.Reason).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exc.CreatedAt, &exc.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return exc, nil
}

// ListForDate возвращает исключения, действующие на дату: на эту дату или повторяющиеся в этот день недели
func (r *Repository) ListForDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildForDateQuery(stylistID, date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// List возвращает исключения стилиста. Диапазон дат ограничивает только разовые исключения.
func (r *Repository) List(ctx context.Context, filter domain.ExceptionFilter) ([]*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// Delete удаляет исключение, принадлежащее стилисту
func (r *Repository) Delete(ctx context.Context, id, stylistID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "stylist_id": stylistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

func buildForDateQuery(stylistID string, date time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"is_recurring": false},
				squirrel.Eq{"date": date.Format(domain.DateFormat)},
			},
			squirrel.And{
				squirrel.Eq{"is_recurring": true},
				squirrel.Eq{"recurring_day_of_week": int(date.Weekday())},
			},
		}).
		OrderBy("start_time ASC NULLS FIRST")
}

func buildListQuery(filter domain.ExceptionFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"stylist_id": filter.StylistID})

	if filter.From != nil || filter.To != nil {
		dated := squirrel.And{squirrel.Eq{"is_recurring": false}}
		if filter.From != nil {
			dated = append(dated, squirrel.GtOrEq{"date": filter.From.Format(domain.DateFormat)})
		}
		if filter.To != nil {
			dated = append(dated, squirrel.LtOrEq{"date": filter.To.Format(domain.DateFormat)})
		}
		builder = builder.Where(squirrel.Or{squirrel.Eq{"is_recurring": true}, dated})
	}

	return builder.OrderBy("is_recurring ASC", "date ASC", "recurring_day_of_week ASC", "start_time ASC NULLS FIRST")
}

func scanExceptions(rows *sql.Rows) ([]*domain.ScheduleException, error) {
	exceptions := make([]*domain.ScheduleException, 0)

	for rows.Next() {
		var (
			e     domain.ScheduleException
			date  sql.NullTime
			dow   sql.NullInt16
			start types.TimeString
			end   types.TimeString
		)

		if err := rows.Scan(&e.ID, &e.StylistID, &date, &e.IsRecurring, &dow, &start, &end, &e.Reason, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanExceptions - scan row: %w", ErrScanRow, err)
		}

		if date.Valid {
			d := date.Time
			e.Date = &d
		}
		if dow.Valid {
			wd := time.Weekday(dow.Int16)
			e.RecurringDayOfWeek = &wd
		}
		e.StartTime = optionalTime(start)
		e.EndTime = optionalTime(end)

		exceptions = append(exceptions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanExceptions - rows error: %w", ErrScanRow, err)
	}

	return exceptions, nil
}
