package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// fakeRepo in-memory хранилище записей для тестов
type fakeRepo struct {
	mu        sync.Mutex
	nextID    int64
	appts     []*domain.Appointment
	createErr error
	eventIDs  map[int64]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, eventIDs: make(map[int64]string)}
}

func (f *fakeRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	f.nextID++
	f.appts = append(f.appts, appt)
	return appt, nil
}

func (f *fakeRepo) ListSlotsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots := make([]domain.BookedSlot, 0)
	for _, a := range f.appts {
		if a.Date.Equal(date) {
			slots = append(slots, domain.BookedSlot{StartTime: a.StartTime, DurationMinutes: a.DurationMinutes})
		}
	}
	return slots, nil
}

func (f *fakeRepo) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventIDs[id] = eventID
	return nil
}

// fakeTxManager сериализует "транзакции" мьютексом — эмулирует блокировку
// строк даты так же, как это делает FOR UPDATE в Postgres
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	calls   int
	eventID string
	err     error
}

func (f *fakeNotifier) NotifyOwner(ctx context.Context, appt *domain.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.eventID, f.err
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2026-09-01 вторник, 2026-09-07 понедельник, 2026-09-13 воскресенье
var (
	testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *fakeRepo, notifier Notifier) *UseCase {
	return NewUseCase(
		repo,
		&fakeTxManager{},
		notifier,
		domain.DefaultCatalog(),
		domain.DefaultWeekSchedule(),
		Policy{SlotStepMinutes: 5},
		&fixedClock{now: testNow},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		ServiceID: domain.ServiceHaircut,
		Date:      monday,
		StartTime: "10:00",
		Name:      "Marko Marković",
		Phone:     "38765123456",
		Email:     "marko@example.com",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{eventID: "evt-1"}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.ServiceHaircut, resp.ServiceID)
	// Длительность и цена выведены из каталога, не из запроса
	assert.Equal(t, 20, resp.DurationMinutes)
	assert.Equal(t, 8.0, resp.Price)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	require.NotNil(t, resp.CalendarEventID)
	assert.Equal(t, "evt-1", *resp.CalendarEventID)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "evt-1", repo.eventIDs[1])
}

func TestExecute_OverlapRejected(t *testing.T) {
	// Scenario B: существующая запись 10:00–10:30 (30 мин)
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeNotifier{})

	first := validRequest()
	first.ServiceID = domain.ServiceShaveAndHaircut // 30 минут
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// 20-минутная запись на 10:15 пересекается — отклонена
	overlapping := validRequest()
	overlapping.StartTime = "10:15"
	_, err = uc.Execute(context.Background(), overlapping)
	require.ErrorIs(t, err, ErrSlotTaken)

	// 10:30 впритык к концу существующей — принята
	adjacent := validRequest()
	adjacent.StartTime = "10:30"
	resp, err := uc.Execute(context.Background(), adjacent)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)

	// В хранилище ровно две записи
	slots, err := repo.ListSlotsByDate(context.Background(), monday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	// Scenario C: две одновременные брони 09:00 на пустую дату —
	// ровно одна успешна, вторая получает конфликт
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeNotifier{})

	const attempts = 2
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := validRequest()
			req.StartTime = "09:00"
			_, err := uc.Execute(context.Background(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	slots, err := repo.ListSlotsByDate(context.Background(), monday)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestExecute_NoDoubleBookingUnderLoad(t *testing.T) {
	// Свойство: после любого числа конкурентных попыток множество
	// закоммиченных интервалов попарно не пересекается
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeNotifier{})

	starts := []types.TimeString{"09:00", "09:10", "09:00", "09:15", "09:10", "09:20", "09:05"}

	var wg sync.WaitGroup
	for _, start := range starts {
		wg.Add(1)
		go func(start types.TimeString) {
			defer wg.Done()
			req := validRequest()
			req.StartTime = start
			_, _ = uc.Execute(context.Background(), req)
		}(start)
	}
	wg.Wait()

	slots, err := repo.ListSlotsByDate(context.Background(), monday)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 0; i < len(slots); i++ {
		a, err := slots[i].Interval()
		require.NoError(t, err)
		for j := i + 1; j < len(slots); j++ {
			b, err := slots[j].Interval()
			require.NoError(t, err)
			assert.False(t, a.Overlaps(b), "committed intervals %v and %v overlap", slots[i], slots[j])
		}
	}
}

func TestExecute_PastDateRejectedBeforeStore(t *testing.T) {
	// Scenario D: дата в прошлом отклоняется до обращения к хранилищу
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeNotifier{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateInPast)
	assert.Empty(t, repo.appts)
}

func TestExecute_ShopClosed(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	req := validRequest()
	req.Date = sunday

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	tests := []struct {
		name  string
		start types.TimeString
	}{
		{name: "before opening", start: "07:40"},
		{name: "ends after closing", start: "15:45"}, // 20 минут → 16:05
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}

	// Слот, заканчивающийся ровно в закрытие, валиден
	req := validRequest()
	req.StartTime = "15:40"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	req := validRequest()
	req.StartTime = "10:07"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	// Сейчас 09:00 того же дня — бронь на 08:30 уже невозможна
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	req := validRequest()
	req.Date = testNow
	req.StartTime = "08:30"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	req := validRequest()
	req.ServiceID = "manicure"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{err: errors.New("smtp: connection refused")}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Запись создана, идентификатор события календаря отсутствует
	assert.Equal(t, int64(1), resp.ID)
	assert.Nil(t, resp.CalendarEventID)
	assert.Len(t, repo.appts, 1)
	assert.Empty(t, repo.eventIDs)
}

func TestExecute_NilNotifier(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.CalendarEventID)
}

func TestExecute_StoreErrorRollsBack(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	uc := newTestUseCase(repo, &fakeNotifier{})

	notifier := &fakeNotifier{}
	uc.notifier = notifier

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)

	// Уведомление не отправляется для несозданной записи
	assert.Equal(t, 0, notifier.calls)
}
