package create_appointment

import (
	"context"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
	SetCalendarEventID(ctx context.Context, id int64, eventID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс уведомления владельца о новой записи.
// Вызывается после коммита, строго best-effort: ошибка уведомления
// никогда не превращает успешную бронь в неуспешную.
type Notifier interface {
	NotifyOwner(ctx context.Context, appt *domain.Appointment) (eventID string, err error)
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
