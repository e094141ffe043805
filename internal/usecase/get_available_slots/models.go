package get_available_slots

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID domain.ServiceID // Услуга, под длительность которой ищутся слоты
	Date      time.Time        // Дата (без времени)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ServiceID       domain.ServiceID   // Услуга
	DurationMinutes int                // Длительность услуги
	Slots           []types.TimeString // Доступные времена начала по возрастанию
}
