package get_available_slots

import (
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StylistBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                string          `json:"date"`
	StylistID           string          `json:"stylistId"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		StylistID:           resp.StylistID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(stylistID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StylistID: stylistID,
		Date:      date,
	}, nil
}
