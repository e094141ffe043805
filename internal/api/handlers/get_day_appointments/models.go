package get_day_appointments

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// DayAppointmentsResponse HTTP response model.
// Отдаются только занятые интервалы без контактных данных клиентов.
type DayAppointmentsResponse struct {
	Date         string       `json:"date"`
	Appointments []BookedSlot `json:"appointments"`
}

// BookedSlot занятый интервал дня
type BookedSlot struct {
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromBookedSlots конвертирует занятые интервалы в HTTP response
func FromBookedSlots(date time.Time, slots []domain.BookedSlot) *DayAppointmentsResponse {
	out := make([]BookedSlot, len(slots))
	for i, slot := range slots {
		out[i] = BookedSlot{
			Time:            slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &DayAppointmentsResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: out,
	}
}
