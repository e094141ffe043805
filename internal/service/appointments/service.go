package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

// Максимальный диапазон для выборки занятых дат (отображение календаря)
const maxDateRangeDays = 366

// Service read-сторона: занятые интервалы дня и даты с записями.
// Выборки выполняются вне критической секции простыми snapshot-чтениями —
// допустима небольшая устаревшесть, финальную проверку делает транзакция
// создания записи.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetDayAppointments возвращает занятые интервалы {время начала, длительность}
// на указанную дату. Контактные данные клиентов наружу не отдаются.
func (s *Service) GetDayAppointments(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slots, err := s.appointmentRepo.ListSlotsByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDayAppointments: failed to list slots for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAppointments: %d slots on %s", len(slots), date.Format(domain.DateFormat))
	return slots, nil
}

// GetBookedDates возвращает различные даты с хотя бы одной записью
// в диапазоне [start, end] для отображения календаря.
func (s *Service) GetBookedDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidDateRange)
	}
	if end.Sub(start) > maxDateRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range exceeds %d days", ErrInvalidDateRange, maxDateRangeDays)
	}

	dates, err := s.appointmentRepo.GetBookedDates(ctx, start, end)
	if err != nil {
		s.logger.Error("GetBookedDates: failed to get dates for %s..%s: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return dates, nil
}
