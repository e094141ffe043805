package domain

import "github.com/royal-barbershop/booking-service/pkg/types"

// Interval полуинтервал [Start, End) внутри одного дня.
// Единственный предикат пересечения в сервисе: и калькулятор доступности,
// и транзакция создания записи используют Overlaps, поэтому они не могут
// разойтись в том, что считается конфликтом.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval создает интервал из времени начала и длительности в минутах
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps проверяет реальное пересечение интервалов.
// Строгие неравенства: интервалы, которые только граничат
// (End одного == Start другого), НЕ пересекаются — записи впритык разрешены.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}
