package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"stylist_id",
	"customer_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"deposit_amount",
	"total_amount",
	"customer_notes",
	"stylist_notes",
	"cancelled_by",
	"cancelled_at",
	"cancellation_reason",
	"confirmed_at",
	"completed_at",
	"reminder_sent_at",
	"rescheduled_from",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Нарушение bookings_no_overlap возвращается как ErrOverlap.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"stylist_id",
			"customer_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"deposit_amount",
			"total_amount",
			"customer_notes",
			"stylist_notes",
			"confirmed_at",
			"rescheduled_from",
		).
		Values(
			booking.ID,
			booking.StylistID,
			booking.CustomerID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.DepositAmount,
			booking.TotalAmount,
			booking.CustomerNotes,
			booking.StylistNotes,
			booking.ConfirmedAt,
			booking.RescheduledFrom,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Create - %v", ErrOverlap, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования по фильтру, отсортированные по (booking_date, start_time).
// Внутри транзакции выборка конкретного дня стилиста блокируется (FOR UPDATE).
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update сохраняет изменяемые поля бронирования при условии, что в БД
// всё ещё лежит expected статус. Иначе возвращает ErrStatusChanged.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", booking.Status).
		Set("deposit_amount", booking.DepositAmount).
		Set("total_amount", booking.TotalAmount).
		Set("stylist_notes", booking.StylistNotes).
		Set("cancelled_by", booking.CancelledBy).
		Set("cancelled_at", booking.CancelledAt).
		Set("cancellation_reason", booking.CancellationReason).
		Set("confirmed_at", booking.ConfirmedAt).
		Set("completed_at", booking.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID, "status": expected}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStatusChanged
	}
	if err != nil {
		if isExclusionViolation(err) {
			return fmt.Errorf("%w: Update - %v", ErrOverlap, err)
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// MarkReminderSent отмечает отправку напоминания. Возвращает false, если
// напоминание уже было отмечено или запись больше не подтверждена.
func (r *Repository) MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("reminder_sent_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed, "reminder_sent_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// buildListQuery строит выборку по фильтру
func buildListQuery(filter domain.BookingFilter, inTx bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(table)

	if filter.StylistID != nil {
		builder = builder.Where(squirrel.Eq{"stylist_id": *filter.StylistID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}
	if filter.ExcludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}
	if filter.ReminderPending {
		builder = builder.Where(squirrel.Eq{"reminder_sent_at": nil})
	}

	builder = builder.OrderBy("booking_date ASC", "start_time ASC")

	// Блокируем день стилиста, чтобы параллельная запись ждала нашего коммита
	if inTx && filter.StylistID != nil && filter.Date != nil {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		cancelledBy sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.StylistID,
		&b.CustomerID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.DepositAmount,
		&b.TotalAmount,
		&b.CustomerNotes,
		&b.StylistNotes,
		&cancelledBy,
		&b.CancelledAt,
		&b.CancellationReason,
		&b.ConfirmedAt,
		&b.CompletedAt,
		&b.ReminderSentAt,
		&b.RescheduledFrom,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledBy.Valid {
		party := domain.CancelParty(cancelledBy.String)
		b.CancelledBy = &party
	}

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == ExclusionViolationCode
}
