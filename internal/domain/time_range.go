package domain

import "github.com/m04kA/SMC-StylistBooking/pkg/types"

// TimeRange is a half-open interval [Start, End) in minutes since midnight
type TimeRange struct {
	Start int
	End   int
}

// NewTimeRange builds a range from two HH:MM values
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, err
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start.Minutes(), End: end.Minutes()}, nil
}

// IsEmpty reports whether the range contains no time
func (r TimeRange) IsEmpty() bool {
	return r.Start >= r.End
}

// Overlaps is strict: ranges that only touch at an edge do not overlap
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// Contains reports whether other lies completely inside r
func (r TimeRange) Contains(other TimeRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}
