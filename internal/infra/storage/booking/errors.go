package booking

import "errors"

// ExclusionViolationCode SQLSTATE нарушения exclusion constraint bookings_no_overlap
const ExclusionViolationCode = "23P01"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда вставка нарушила запрет пересечения активных записей
	ErrOverlap = errors.New("booking.repository: booking overlaps an active booking")

	// ErrStatusChanged возвращается, когда статус записи изменился между чтением и обновлением
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
