package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/royal-barbershop/booking-service/internal/domain"
	appointmentRepo "github.com/royal-barbershop/booking-service/internal/infra/storage/appointment"
	"github.com/royal-barbershop/booking-service/pkg/ptr"
)

// Policy политика бронирования, общая с калькулятором доступности
type Policy struct {
	SlotStepMinutes  int
	MinNoticeMinutes int
}

// UseCase use case создания записи.
// Критическая секция "проверка пересечений + вставка" выполняется
// в сериализуемой транзакции с блокировкой строк даты, поэтому две
// конкурентные брони одного слота не могут пройти обе.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	catalog         domain.Catalog
	schedule        domain.WeekSchedule
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
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
		txManager:       txManager,
		notifier:        notifier,
		catalog:         catalog,
		schedule:        schedule,
		policy:          policy,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация полей запроса — до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга определяет длительность и цену — клиентским значениям не доверяем
	service, err := uc.catalog.Get(req.ServiceID)
	if err != nil {
		uc.logger.Warn("CreateAppointment: unknown service %q", req.ServiceID)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceID)
	}

	now := uc.timeProvider.Now()

	// 3. Политики даты и времени
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	day := uc.schedule.ForDate(req.Date)
	if !day.IsOpen {
		uc.logger.Warn("CreateAppointment: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}

	if err := validateWithinWorkingHours(req.StartTime, service.DurationMinutes, day); err != nil {
		uc.logger.Warn("CreateAppointment: working hours validation failed: %v", err)
		return nil, err
	}

	if err := validateSlotGrid(req.StartTime, day.OpenTime, uc.policy.SlotStepMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: slot grid validation failed: %v", err)
		return nil, err
	}

	if err := validateBookingTime(req.Date, req.StartTime, now, uc.policy.MinNoticeMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
		return nil, err
	}

	candidate, err := domain.NewInterval(req.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: candidate interval: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Критическая секция: проверка пересечений и вставка в одной
	// сериализуемой транзакции. Любая ошибка внутри откатывает транзакцию
	// целиком — частичных строк не остается.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Занятые интервалы даты с блокировкой (FOR UPDATE)
		booked, err := uc.appointmentRepo.ListSlotsByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list booked slots: %v", err)
			return fmt.Errorf("%w: failed to list booked slots: %v", ErrInternal, err)
		}

		// 4.2. Проверка пересечений тем же предикатом, что и в калькуляторе
		for _, b := range booked {
			existing, err := b.Interval()
			if err != nil {
				continue
			}
			if candidate.Overlaps(existing) {
				uc.logger.Warn("CreateAppointment: slot %s-%s overlaps existing %s-%s",
					candidate.Start, candidate.End, existing.Start, existing.End)
				return ErrSlotTaken
			}
		}

		// 4.3. Вставка с зафиксированными длительностью и ценой
		appt := &domain.Appointment{
			ServiceID:       service.ID,
			Price:           service.Price,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Name:            req.Name,
			Phone:           req.Phone,
			Email:           req.Email,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс (дата, время начала) — резервная защита
			// от вырожденного случая одинакового времени начала
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Уведомление владельца — после коммита, best-effort.
	// Ошибка здесь логируется и не влияет на результат бронирования.
	uc.notifyOwner(ctx, result)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     service.Name,
		Price:           result.Price,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Name:            result.Name,
		Phone:           result.Phone,
		Email:           result.Email,
		CalendarEventID: result.CalendarEventID,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// notifyOwner отправляет уведомление владельцу и сохраняет идентификатор
// события календаря. Все ошибки только логируются.
func (uc *UseCase) notifyOwner(ctx context.Context, appt *domain.Appointment) {
	if uc.notifier == nil {
		return
	}

	eventID, err := uc.notifier.NotifyOwner(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: owner notification failed for appointment id=%d: %v", appt.ID, err)
		return
	}

	uc.logger.Info("CreateAppointment: owner notified for appointment id=%d, event=%s", appt.ID, eventID)

	if eventID == "" {
		return
	}

	if err := uc.appointmentRepo.SetCalendarEventID(ctx, appt.ID, eventID); err != nil {
		uc.logger.Error("CreateAppointment: failed to store calendar event id for appointment id=%d: %v", appt.ID, err)
		return
	}
	appt.CalendarEventID = ptr.Ptr(eventID)
}
