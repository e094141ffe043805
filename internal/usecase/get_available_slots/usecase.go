package get_available_slots

import (
	"context"
	"fmt"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// Policy политика генерации слотов
type Policy struct {
	SlotStepMinutes  int // шаг кандидатов времени начала
	MinNoticeMinutes int // минимальное время до начала при брони на сегодня
}

// UseCase use case получения доступных слотов для записи.
// Чистое вычисление: список занятых интервалов читается одним snapshot-запросом,
// результат пересчитывается заново на каждый запрос и детерминирован
// при фиксированных (дата, услуга, занятые интервалы, "сейчас").
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         domain.Catalog
	schedule        domain.WeekSchedule
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog domain.Catalog,
	schedule domain.WeekSchedule,
	policy Policy,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if policy.SlotStepMinutes <= 0 {
		policy.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		schedule:        schedule,
		policy:          policy,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга определяет длительность слота
	service, err := uc.catalog.Get(req.ServiceID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unknown service %q", req.ServiceID)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceID)
	}

	// 3. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Рабочие часы на день недели запрошенной даты
	day := uc.schedule.ForDate(req.Date)
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			DurationMinutes: service.DurationMinutes,
			Slots:           []types.TimeString{},
		}, nil
	}

	// 5. Генерируем кандидатов и отсекаем прошедшие на сегодня времена
	candidates, err := generateCandidates(day, service.DurationMinutes, uc.policy.SlotStepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	candidates, err = filterPastTimes(candidates, req.Date, now, uc.policy.MinNoticeMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to apply time cutoff: %v", err)
		return nil, fmt.Errorf("%w: failed to apply time cutoff: %v", ErrInternal, err)
	}

	// 6. Снимок занятых интервалов на дату (без блокировок — допустима
	// небольшая устаревшесть, финальная проверка выполняется при создании)
	booked, err := uc.appointmentRepo.ListSlotsByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 7. Отсекаем пересечения с занятыми интервалами
	slots, err := filterConflicts(candidates, service.DurationMinutes, booked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter conflicts: %v", err)
		return nil, fmt.Errorf("%w: failed to filter conflicts: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for service=%s, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
