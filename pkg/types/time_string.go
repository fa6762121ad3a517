package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeLayout формат времени HH:MM (24 часа)
const TimeLayout = "15:04"

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток в формате "HH:MM".
// Формат фиксированной ширины с ведущими нулями, поэтому строки можно сравнивать лексикографически.
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" (формат Postgres time)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == len("15:04:05") {
		s = s[:len(TimeLayout)]
	}
	if len(s) != len(TimeLayout) {
		return "", ErrInvalidTimeString
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return "", ErrInvalidTimeString
	}
	return TimeString(s), nil
}

// TimeStringFromMinutes создает TimeString из количества минут от начала суток
func TimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if len(t) != len(TimeLayout) {
		return ErrInvalidTimeString
	}
	if _, err := time.Parse(TimeLayout, string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes возвращает количество минут от начала суток, -1 для некорректного значения
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(TimeLayout, string(t))
	if err != nil || len(t) != len(TimeLayout) {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes возвращает время, сдвинутое на n минут
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m := t.Minutes()
	if m < 0 {
		return "", ErrInvalidTimeString
	}
	return TimeStringFromMinutes(m + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// On возвращает момент времени t в указанную дату (в часовом поясе даты)
func (t TimeString) On(date time.Time) time.Time {
	m := t.Minutes()
	if m < 0 {
		m = 0
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, date.Location())
}

// Scan реализует sql.Scanner (Postgres отдает time как "HH:MM:SS")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
