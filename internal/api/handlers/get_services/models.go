package get_services

import "github.com/royal-barbershop/booking-service/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []Service `json:"services"`
}

// Service описание услуги каталога
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// FromCatalog конвертирует услуги каталога в HTTP response
func FromCatalog(services []domain.Service) *ServicesResponse {
	out := make([]Service, len(services))
	for i, s := range services {
		out[i] = Service{
			ID:              string(s.ID),
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &ServicesResponse{Services: out}
}
