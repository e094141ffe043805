package create_appointment

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// Request модель запроса на создание записи.
// Длительность и цена клиентом не передаются — они выводятся из каталога
// на стороне сервера.
type Request struct {
	ServiceID domain.ServiceID
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала ("10:00")
	Name      string
	Phone     string
	Email     string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ServiceID       domain.ServiceID
	ServiceName     string
	Price           float64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Name            string
	Phone           string
	Email           string
	CalendarEventID *string
	CreatedAt       time.Time
}
