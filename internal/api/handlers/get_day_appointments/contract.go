package get_day_appointments

import (
	"context"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

type AppointmentsService interface {
	GetDayAppointments(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
