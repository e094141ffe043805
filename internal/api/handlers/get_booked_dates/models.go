package get_booked_dates

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// BookedDatesResponse HTTP response model
type BookedDatesResponse struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Dates []string `json:"dates"`
}

// FromBookedDates конвертирует список дат в HTTP response
func FromBookedDates(start, end time.Time, dates []time.Time) *BookedDatesResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}

	return &BookedDatesResponse{
		Start: start.Format(domain.DateFormat),
		End:   end.Format(domain.DateFormat),
		Dates: out,
	}
}
