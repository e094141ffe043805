package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/royal-barbershop/booking-service/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
var ErrInvalidSchedule = errors.New("invalid week schedule")

// DaySchedule рабочие часы одного дня недели
type DaySchedule struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// WeekSchedule is the immutable weekly opening-hours policy, injected into
// both the availability calculator and the booking path so they always agree
// on when the shop is open.
type WeekSchedule struct {
	days [7]DaySchedule // индекс — time.Weekday (Sunday = 0)
}

// NewWeekSchedule создает расписание из карты день-недели → часы работы.
// Дни, отсутствующие в карте, считаются выходными.
func NewWeekSchedule(days map[time.Weekday]DaySchedule) (WeekSchedule, error) {
	var s WeekSchedule
	for weekday, day := range days {
		if day.IsOpen {
			if day.OpenTime.IsZero() || day.CloseTime.IsZero() {
				return WeekSchedule{}, fmt.Errorf("%w: %s is open but has no hours", ErrInvalidSchedule, weekday)
			}
			if err := day.OpenTime.Validate(); err != nil {
				return WeekSchedule{}, fmt.Errorf("%w: %s open time: %v", ErrInvalidSchedule, weekday, err)
			}
			if err := day.CloseTime.Validate(); err != nil {
				return WeekSchedule{}, fmt.Errorf("%w: %s close time: %v", ErrInvalidSchedule, weekday, err)
			}
			if !day.OpenTime.IsBefore(day.CloseTime) {
				return WeekSchedule{}, fmt.Errorf("%w: %s opens at or after closing", ErrInvalidSchedule, weekday)
			}
		}
		s.days[weekday] = day
	}
	return s, nil
}

// DefaultWeekSchedule возвращает принятую политику работы:
// понедельник–пятница 08:00–16:00, суббота 08:00–15:00, воскресенье выходной.
func DefaultWeekSchedule() WeekSchedule {
	weekdayHours := DaySchedule{IsOpen: true, OpenTime: "08:00", CloseTime: "16:00"}

	schedule, err := NewWeekSchedule(map[time.Weekday]DaySchedule{
		time.Monday:    weekdayHours,
		time.Tuesday:   weekdayHours,
		time.Wednesday: weekdayHours,
		time.Thursday:  weekdayHours,
		time.Friday:    weekdayHours,
		time.Saturday:  {IsOpen: true, OpenTime: "08:00", CloseTime: "15:00"},
	})
	if err != nil {
		panic(err) // невозможен для статических значений
	}
	return schedule
}

// ForDate возвращает рабочие часы для дня недели указанной даты
func (s WeekSchedule) ForDate(date time.Time) DaySchedule {
	return s.days[date.Weekday()]
}
