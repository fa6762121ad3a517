package scheduling

import (
	"time"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/pkg/types"
)

// ComputeSlots возвращает свободные времена начала слотов на дату в порядке возрастания.
//
// Слоты идут от начала рабочего окна с шагом slot+buffer. Слот, который заканчивается
// позже конца окна, отбрасывается. Затем убираются слоты, пересекающиеся с частичными
// исключениями и активными (pending/confirmed) записями. Полнодневное исключение или
// выходной день дают пустой список.
func ComputeSlots(
	schedule *domain.WorkingSchedule,
	date time.Time,
	exceptions []*domain.ScheduleException,
	bookings []*domain.Booking,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	window := schedule.WindowFor(date)
	if !window.IsWorking() {
		return slots
	}

	for _, exc := range exceptions {
		if exc.AppliesTo(date) && exc.IsFullDay() {
			return slots
		}
	}

	wr := window.Range()
	if wr.Start < 0 || wr.End < 0 || wr.IsEmpty() {
		return slots
	}

	step := schedule.SlotDurationMinutes + schedule.BufferTimeMinutes
	if schedule.SlotDurationMinutes <= 0 || step <= 0 {
		return slots
	}

	for cursor := wr.Start; cursor < wr.End; cursor += step {
		candidate := domain.TimeRange{Start: cursor, End: cursor + schedule.SlotDurationMinutes}
		if candidate.End > wr.End {
			break
		}

		if blockedByException(date, candidate, exceptions) {
			continue
		}
		if overlapsBooking(candidate, bookings, nil) != nil {
			continue
		}

		start, err := types.TimeStringFromMinutes(cursor)
		if err != nil {
			break
		}
		slots = append(slots, start)
	}

	return slots
}

// blockedByException проверяет пересечение интервала с исключениями на дату
func blockedByException(date time.Time, r domain.TimeRange, exceptions []*domain.ScheduleException) bool {
	for _, exc := range exceptions {
		if exc.Blocks(date, r) {
			return true
		}
	}
	return false
}

// overlapsBooking возвращает первую активную запись, пересекающуюся с интервалом.
// Запись с excludeID пропускается.
func overlapsBooking(r domain.TimeRange, bookings []*domain.Booking, excludeID *string) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Range().Overlaps(r) {
			return b
		}
	}
	return nil
}
