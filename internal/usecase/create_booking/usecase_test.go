package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	bookingRepo "github.com/KKKircheff/GTP-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	existsResult bool
	existsErr    error
	createErr    error

	created     *domain.Booking
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) ExistsConfirmed(_ context.Context, _ time.Time, _ string) (bool, error) {
	return f.existsResult, f.existsErr
}

// inlineTxManager executes the callback without a real transaction
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeCache struct {
	invalidated []time.Time
	err         error
}

func (f *fakeCache) InvalidateDate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, date)
	return f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPriceTable() domain.PriceTable {
	return domain.PriceTable{
		Prices: map[domain.VehicleType]int{
			domain.VehicleCar: 60,
			domain.VehicleBus: 80,
		},
		OnlineDiscount: 5,
	}
}

func newTestUseCase(repo *fakeBookingRepo, cache *fakeCache) *UseCase {
	uc := NewUseCase(repo, &inlineTxManager{}, cache, testSchedule(), testPriceTable(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		cache := &fakeCache{}
		uc := newTestUseCase(repo, cache)

		req := validRequest()
		req.IsOnlineBooking = true

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "CB1234AK", resp.LicensePlate)
		assert.Equal(t, 55, resp.Price) // 60 base minus online discount
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

		// Confirmation number is derived from the appointment date and ID tail
		assert.True(t, strings.HasPrefix(resp.ConfirmationNumber, "AC20260916"))
		expectedSuffix := strings.ToUpper(resp.ID[len(resp.ID)-6:])
		assert.True(t, strings.HasSuffix(resp.ConfirmationNumber, expectedSuffix))

		// Cache for the booked date was invalidated
		require.Len(t, cache.invalidated, 1)
		assert.True(t, domain.IsSameDay(req.Date, cache.invalidated[0]))
	})

	t.Run("slot already taken on read check", func(t *testing.T) {
		repo := &fakeBookingRepo{existsResult: true}
		cache := &fakeCache{}
		uc := newTestUseCase(repo, cache)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Equal(t, 0, repo.createCalls)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("unique index violation maps to slot not available", func(t *testing.T) {
		// The read check passed but a concurrent insert won the race:
		// the partial unique index rejects the second insert.
		repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
		cache := &fakeCache{}
		uc := newTestUseCase(repo, cache)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeCache{})

		req := validRequest()
		req.LicensePlate = "!!"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("weekend date is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCache{})

		req := validRequest()
		req.Date = time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC) // Saturday

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("cache invalidation failure does not fail the booking", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		cache := &fakeCache{err: errors.New("redis down")}
		uc := newTestUseCase(repo, cache)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ConfirmationNumber)
	})

	t.Run("repository error maps to internal", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
