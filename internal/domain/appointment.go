package domain

import (
	"time"

	"github.com/royal-barbershop/booking-service/pkg/types"
)

// Appointment represents a persisted booking record.
// Records are immutable after creation: rescheduling is done by the client
// booking a new slot, removal is an administrative action outside this service.
type Appointment struct {
	ID              int64
	ServiceID       ServiceID
	Price           float64
	Date            time.Time // дата записи без компонента времени
	StartTime       types.TimeString
	DurationMinutes int

	// Контактные данные клиента
	Name  string
	Phone string
	Email string

	// CalendarEventID идентификатор события во внешнем календаре.
	// nil, если отправка приглашения не удалась или выключена —
	// это никогда не влияет на само бронирование.
	CalendarEventID *string

	CreatedAt time.Time
}

// EndTime returns the time the appointment finishes.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// Interval returns the half-open [start, end) interval the appointment occupies.
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// BookedSlot is the minimal projection of an appointment used for
// availability computation and the public day view.
type BookedSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// Interval returns the half-open [start, end) interval the slot occupies.
func (s BookedSlot) Interval() (Interval, error) {
	return NewInterval(s.StartTime, s.DurationMinutes)
}
