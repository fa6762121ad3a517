package exception

import "errors"

var (
	// ErrExceptionNotFound возвращается, когда исключение не найдено у стилиста
	ErrExceptionNotFound = errors.New("exception.repository: exception not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("exception.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("exception.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("exception.repository: failed to scan row")
)
