package get_available_slots

import (
	"time"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// generateCandidates генерирует кандидатов времени начала с шагом stepMinutes
// от открытия до последнего времени, при котором услуга успевает закончиться
// к закрытию. Слот, заканчивающийся ровно в закрытие, валиден; около закрытия
// кандидатов может не остаться вовсе — это корректное поведение.
func generateCandidates(day domain.DaySchedule, durationMinutes, stepMinutes int) ([]types.TimeString, error) {
	candidates := make([]types.TimeString, 0)

	if !day.IsOpen {
		return candidates, nil
	}

	current := day.OpenTime
	for current.IsBefore(day.CloseTime) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		// Конец слота монотонно растет: дальше кандидатов не будет
		if slotEnd.IsAfter(day.CloseTime) {
			break
		}

		candidates = append(candidates, current)

		current, err = current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
	}

	return candidates, nil
}

// filterPastTimes отсекает слоты, которые уже нельзя забронировать сегодня.
// Для дат в будущем кандидаты возвращаются как есть.
func filterPastTimes(
	candidates []types.TimeString,
	requestDate time.Time,
	now time.Time,
	minNoticeMinutes int,
) ([]types.TimeString, error) {
	if !isSameDay(requestDate, now) {
		return candidates, nil
	}

	cutoff, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// Отсечка за границей суток — на сегодня слотов не осталось
		return []types.TimeString{}, nil
	}

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if slot.IsAfter(cutoff) {
			available = append(available, slot)
		}
	}

	return available, nil
}

// filterConflicts отсекает кандидатов, пересекающихся с занятыми интервалами.
// Использует общий предикат domain.Interval.Overlaps: слоты впритык к занятым
// (конец одного == начало другого) остаются доступными.
func filterConflicts(
	candidates []types.TimeString,
	durationMinutes int,
	booked []domain.BookedSlot,
) ([]types.TimeString, error) {
	intervals := make([]domain.Interval, 0, len(booked))
	for _, b := range booked {
		interval, err := b.Interval()
		if err != nil {
			// Некорректная запись в хранилище не должна ломать выдачу
			continue
		}
		intervals = append(intervals, interval)
	}

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		candidate, err := domain.NewInterval(slot, durationMinutes)
		if err != nil {
			return nil, err
		}

		conflict := false
		for _, interval := range intervals {
			if candidate.Overlaps(interval) {
				conflict = true
				break
			}
		}

		if !conflict {
			available = append(available, slot)
		}
	}

	return available, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
