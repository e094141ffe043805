package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/psqlbuilder"
	"github.com/royal-barbershop/booking-service/pkg/txmanager"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись и возвращает её с присвоенным id.
// Длительность и цена уже выведены из каталога на стороне usecase.
// Нарушение уникальности (appointment_date, start_time) транслируется
// в ErrSlotTaken — резервная защита от одинакового времени начала.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"service",
			"price",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"client_name",
			"client_phone",
			"client_email",
		).
		Values(
			appt.ServiceID,
			appt.Price,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Name,
			appt.Phone,
			appt.Email,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// ListSlotsByDate возвращает занятые интервалы {время начала, длительность}
// на указанную дату, отсортированные по времени начала.
//
// Внутри транзакции выборка выполняется с FOR UPDATE: это сериализует
// конкурентные проверки "нет ли пересечения" для одной даты — две
// одновременные брони не могут обе пройти проверку до вставки.
// Вне транзакции (отображение календаря) блокировка не берется.
func (r *Repository) ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time", "duration_minutes").
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var slot domain.BookedSlot
		if err := rows.Scan(&slot.StartTime, &slot.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListSlotsByDate - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlotsByDate - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetBookedDates возвращает различные даты с хотя бы одной записью
// в диапазоне [start, end]. Используется для отображения календаря.
func (r *Repository) GetBookedDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT appointment_date").
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": start}).
		Where(squirrel.LtOrEq{"appointment_date": end}).
		OrderBy("appointment_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetBookedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - iterate rows: %v", ErrScanRow, err)
	}

	return dates, nil
}

// SetCalendarEventID записывает идентификатор события календаря после
// успешной отправки приглашения. Вызывается вне транзакции бронирования,
// best-effort: ошибка здесь не влияет на уже созданную запись.
func (r *Repository) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("calendar_event_id", eventID).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
