package create_appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

var (
	// Телефон: 9–12 цифр без разделителей
	phoneRegexp = regexp.MustCompile(`^[0-9]{9,12}$`)

	emailRegexp = regexp.MustCompile(`^\w+([-.]?\w+)*@\w+([-.]?\w+)*(\.\w{2,})+$`)
)

// validateRequest валидирует поля запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Name) < domain.MinNameLength || len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}

	if !phoneRegexp.MatchString(req.Phone) {
		return fmt.Errorf("%w: invalid phone format", ErrInvalidInput)
	}

	if !emailRegexp.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	return nil
}

// validateWithinWorkingHours проверяет, что слот целиком умещается
// в рабочие часы: начало не раньше открытия, конец не позже закрытия.
// Слот, заканчивающийся ровно в закрытие, валиден.
func validateWithinWorkingHours(start types.TimeString, durationMinutes int, day domain.DaySchedule) error {
	if start.IsBefore(day.OpenTime) {
		return fmt.Errorf("%w: starts before opening at %s", ErrOutsideWorkingHours, day.OpenTime)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}
	if end.IsAfter(day.CloseTime) {
		return fmt.Errorf("%w: ends after closing at %s", ErrOutsideWorkingHours, day.CloseTime)
	}

	return nil
}

// validateSlotGrid проверяет, что время начала лежит на сетке слотов,
// которую предлагает калькулятор доступности
func validateSlotGrid(start, open types.TimeString, stepMinutes int) error {
	offset := start.Minutes() - open.Minutes()
	if offset%stepMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to %d-minute grid from %s", ErrInvalidTimeSlot, start, stepMinutes, open)
	}
	return nil
}

// validateBookingTime проверяет отсечку по текущему моменту для брони на сегодня
func validateBookingTime(
	date time.Time,
	start types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	if !isSameDay(date, now) {
		return nil
	}

	cutoff, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		return ErrTooLateToBook
	}

	if !start.IsAfter(cutoff) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
