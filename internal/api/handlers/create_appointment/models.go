package create_appointment

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
	createAppointment "github.com/royal-barbershop/booking-service/internal/usecase/create_appointment"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Service string `json:"service"` // "shave" | "haircut" | "shave_and_haircut"
	Date    string `json:"date"`    // "2026-09-07"
	Time    string `json:"time"`    // "10:00"
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Service         string  `json:"service"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	CalendarEventID *string `json:"calendarEventId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceID: domain.ServiceID(r.Service),
		Date:      date,
		StartTime: startTime,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Service:         string(resp.ServiceID),
		ServiceName:     resp.ServiceName,
		Price:           resp.Price,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Name:            resp.Name,
		Phone:           resp.Phone,
		Email:           resp.Email,
		CalendarEventID: resp.CalendarEventID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
