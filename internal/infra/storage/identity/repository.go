package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/psqlbuilder"
)

var userColumns = []string{
	"u.id",
	"u.phone_number",
	"u.first_name",
	"u.last_name",
	"u.role",
	"u.status",
	"u.is_phone_verified",
	"u.created_at",
	"u.updated_at",
}

// Repository пользователи и профили стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetUser возвращает пользователя по ID
func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users u").
		Where(squirrel.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(userDest(&u)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - scan user: %w", ErrScanRow, err)
	}
	if err := finishUser(&u); err != nil {
		return nil, fmt.Errorf("%w: GetUser - %w", ErrScanRow, err)
	}

	return &u, nil
}

// GetStylistIfApproved возвращает стилиста, только если его профиль одобрен
func (r *Repository) GetStylistIfApproved(ctx context.Context, userID string) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cols := append(append([]string{}, userColumns...), "p.id", "p.business_name", "p.salon_address", "p.status")
	query, args, err := psqlbuilder.Select(cols...).
		From("users u").
		Join("stylist_profiles p ON p.user_id = u.id").
		Where(squirrel.Eq{"u.id": userID, "p.status": domain.ProfileApproved}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistIfApproved - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Stylist
	dest := append(userDest(&s.User), &s.ProfileID, &s.BusinessName, &s.SalonAddress, &s.Status)
	err = executor.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistIfApproved - scan stylist: %w", ErrScanRow, err)
	}
	if err := finishUser(&s.User); err != nil {
		return nil, fmt.Errorf("%w: GetStylistIfApproved - %w", ErrScanRow, err)
	}

	return &s, nil
}

// GetOrCreateCustomerByPhone находит пользователя по телефону или создает нового
// клиента (телефон не подтверждён, статус active). Безопасно при параллельных вызовах.
func (r *Repository) GetOrCreateCustomerByPhone(ctx context.Context, phone string, firstName *string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertQuery, insertArgs, err := psqlbuilder.Insert("users").
		Columns("id", "phone_number", "first_name", "role", "status", "is_phone_verified").
		Values(uuid.NewString(), phone, firstName, domain.RoleCustomer.String(), domain.UserStatusActive, false).
		Suffix("ON CONFLICT (phone_number) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateCustomerByPhone - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateCustomerByPhone - execute insert: %w", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users u").
		Where(squirrel.Eq{"u.phone_number": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateCustomerByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	if err := executor.QueryRowContext(ctx, query, args...).Scan(userDest(&u)...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateCustomerByPhone - scan user: %w", ErrScanRow, err)
	}
	if err := finishUser(&u); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateCustomerByPhone - %w", ErrScanRow, err)
	}

	return &u, nil
}

func userDest(u *domain.User) []interface{} {
	return []interface{}{
		&u.ID,
		&u.PhoneNumber,
		&u.FirstName,
		&u.LastName,
		roleScanner{&u.Role},
		&u.Status,
		&u.IsPhoneVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}

func finishUser(u *domain.User) error {
	if u.Role == domain.RoleUnknown {
		return fmt.Errorf("user %s has unknown role", u.ID)
	}
	return nil
}
