package identity

import (
	"fmt"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

// roleScanner разбирает колонку role в domain.Role
type roleScanner struct {
	role *domain.Role
}

func (s roleScanner) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported role type %T", src)
	}

	role, err := domain.ParseRole(raw)
	if err != nil {
		return err
	}
	*s.role = role
	return nil
}
