package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

type fakeRepo struct {
	slots []domain.BookedSlot
	err   error
	calls int
}

func (f *fakeRepo) ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	f.calls++
	return f.slots, f.err
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeRepo, now time.Time) *UseCase {
	return NewUseCase(
		repo,
		domain.DefaultCatalog(),
		domain.DefaultWeekSchedule(),
		Policy{SlotStepMinutes: 5},
		&fixedClock{now: now},
		nopLogger{},
	)
}

// 2026-09-07 понедельник
var (
	testNow  = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	monday   = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
)

func TestExecute_EmptyDay(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.DurationMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("15:40"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_ExistingBookingBlocksOverlaps(t *testing.T) {
	// Запись 10:00–10:30: кандидат 10:15 исключен, 10:30 доступен (впритык)
	repo := &fakeRepo{slots: []domain.BookedSlot{{StartTime: "10:00", DurationMinutes: 30}}}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: monday})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("10:15"))
	assert.NotContains(t, resp.Slots, types.TimeString("09:45"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("09:40"))
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeRepo{slots: []domain.BookedSlot{{StartTime: "12:00", DurationMinutes: 10}}}
	uc := newTestUseCase(repo, testNow)

	req := &Request{ServiceID: domain.ServiceShave, Date: monday}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Одинаковый снимок данных — идентичная упорядоченная последовательность
	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_SaturdayClosesEarlier(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: saturday})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:40"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_SundayClosed(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: sunday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	// Магазин закрыт — к хранилищу не обращаемся
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	past := testNow.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: past})
	require.ErrorIs(t, err, ErrDateInPast)

	// Ошибка валидации — до обращения к хранилищу
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_TodayCutsPastTimes(t *testing.T) {
	// Сегодня вторник 2026-09-01, сейчас 09:00
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: testNow})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:05"), resp.Slots[0])
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "manicure", Date: monday})
	require.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceShave})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: domain.ServiceHaircut, Date: monday})
	require.ErrorIs(t, err, ErrInternal)
}
