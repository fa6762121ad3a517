package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("identity.repository: user not found")

	// ErrStylistNotFound возвращается, когда стилист не найден или профиль не одобрен
	ErrStylistNotFound = errors.New("identity.repository: stylist not found or not approved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("identity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("identity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("identity.repository: failed to scan row")
)
