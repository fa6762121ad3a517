package exception

import "github.com/m04kA/SMC-StylistBooking/pkg/types"

// optionalTime NULL колонки time сканируются в пустую строку
func optionalTime(v types.TimeString) *types.TimeString {
	if v.IsZero() {
		return nil
	}
	return &v
}
