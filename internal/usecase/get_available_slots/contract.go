package get_available_slots

import (
	"context"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListSlotsByDate получает занятые интервалы на конкретную дату
	ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ShopTimeProvider провайдер времени в часовом поясе заведения.
// Правила "дата не в прошлом" и "сегодня только после текущего момента"
// считаются в локальном времени барбершопа, а не сервера.
type ShopTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе заведения
func (p *ShopTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
