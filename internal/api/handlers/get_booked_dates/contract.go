package get_booked_dates

import (
	"context"
	"time"
)

type AppointmentsService interface {
	GetBookedDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
