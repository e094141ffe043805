package appointments

import (
	"context"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
	GetBookedDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
