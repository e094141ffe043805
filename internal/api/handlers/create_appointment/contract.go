package create_appointment

import (
	"context"

	createAppointment "github.com/royal-barbershop/booking-service/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// Metrics счетчики бизнес-событий бронирования. Может быть nil, если метрики выключены.
type Metrics interface {
	IncAppointmentsCreated()
	IncBookingConflicts()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
