package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/royal-barbershop/booking-service/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Request) {}},
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = "" }, wantErr: true},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: true},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: true},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "10am" }, wantErr: true},
		{name: "short name", mutate: func(r *Request) { r.Name = "M" }, wantErr: true},
		{name: "phone too short", mutate: func(r *Request) { r.Phone = "12345678" }, wantErr: true},
		{name: "phone too long", mutate: func(r *Request) { r.Phone = "1234567890123" }, wantErr: true},
		{name: "phone with letters", mutate: func(r *Request) { r.Phone = "38765abc456" }, wantErr: true},
		{name: "bad email", mutate: func(r *Request) { r.Email = "marko.example.com" }, wantErr: true},
		{name: "email without tld", mutate: func(r *Request) { r.Email = "marko@example" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := validateRequest(req)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateWithinWorkingHours(t *testing.T) {
	day := domain.DaySchedule{IsOpen: true, OpenTime: "08:00", CloseTime: "16:00"}

	require.NoError(t, validateWithinWorkingHours("08:00", 20, day))
	require.NoError(t, validateWithinWorkingHours("15:40", 20, day))
	require.ErrorIs(t, validateWithinWorkingHours("15:41", 20, day), ErrOutsideWorkingHours)
	require.ErrorIs(t, validateWithinWorkingHours("07:55", 20, day), ErrOutsideWorkingHours)
}

func TestValidateSlotGrid(t *testing.T) {
	require.NoError(t, validateSlotGrid("10:00", "08:00", 5))
	require.NoError(t, validateSlotGrid("10:05", "08:00", 5))
	require.ErrorIs(t, validateSlotGrid("10:07", "08:00", 5), ErrInvalidTimeSlot)
	require.NoError(t, validateSlotGrid("10:30", "08:00", 30))
	require.ErrorIs(t, validateSlotGrid("10:20", "08:00", 30), ErrInvalidTimeSlot)
}

func TestValidateBookingTime(t *testing.T) {
	// На будущие даты отсечка не применяется
	require.NoError(t, validateBookingTime(monday, "08:00", testNow, 0))

	// Сегодня: строго после текущего момента
	require.ErrorIs(t, validateBookingTime(testNow, "09:00", testNow, 0), ErrTooLateToBook)
	require.NoError(t, validateBookingTime(testNow, "09:05", testNow, 0))

	// С минимальным временем предупреждения
	require.ErrorIs(t, validateBookingTime(testNow, "09:30", testNow, 30), ErrTooLateToBook)
	require.NoError(t, validateBookingTime(testNow, "09:35", testNow, 30))
}
