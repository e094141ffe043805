package get_services

import (
	"net/http"

	"github.com/royal-barbershop/booking-service/internal/api/handlers"
	"github.com/royal-barbershop/booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	catalog domain.Catalog
	logger  Logger
}

func NewHandler(catalog domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.List()

	response := FromCatalog(services)

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
