package get_booked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/royal-barbershop/booking-service/internal/api/handlers"
	"github.com/royal-barbershop/booking-service/internal/domain"
	appointmentsService "github.com/royal-barbershop/booking-service/internal/service/appointments"
)

const (
	msgMissingRange     = "параметры start и end обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/dates
// Query params: start, end (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /appointments/dates - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /appointments/dates - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /appointments/dates - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	dates, err := h.service.GetBookedDates(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidDateRange):
			h.logger.Warn("GET /appointments/dates - Invalid date range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments/dates - Failed to get booked dates: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromBookedDates(start, end, dates)

	h.logger.Info("GET /appointments/dates - Booked dates retrieved successfully: start=%s, end=%s, count=%d",
		startStr, endStr, len(dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
