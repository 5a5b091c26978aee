package bookings

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
	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings/models"
)

type fakeRepo struct {
	booking *domain.Booking
	getErr  error

	listResult []*domain.Booking
	listErr    error
	lastFilter domain.BookingsFilter

	cancelErr    error
	cancelReason string

	updateErr    error
	updateStatus domain.BookingStatus
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeRepo) GetByConfirmationNumber(_ context.Context, _ string) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ string, status domain.BookingStatus) error {
	f.updateStatus = status
	return f.updateErr
}

func (f *fakeRepo) Cancel(_ context.Context, _ string, reason string) error {
	f.cancelReason = reason
	return f.cancelErr
}

type fakeCache struct {
	invalidated []time.Time
}

func (f *fakeCache) InvalidateDate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, date)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:                 "b-1",
		ConfirmationNumber: "AC20260916ABCDEF",
		CustomerName:       "Иван Иванов",
		AppointmentDate:    time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		AppointmentTime:    "10:30",
		Status:             domain.StatusConfirmed,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := NewService(&fakeRepo{booking: confirmedBooking()}, &fakeCache{}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, "b-1", resp.ID)
		assert.Equal(t, "10:30", resp.AppointmentTime)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeCache{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetByConfirmationNumber(t *testing.T) {
	svc := NewService(&fakeRepo{booking: confirmedBooking()}, &fakeCache{}, nopLogger{})

	resp, err := svc.GetByConfirmationNumber(context.Background(), "AC20260916ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "AC20260916ABCDEF", resp.ConfirmationNumber)
}

func TestService_List(t *testing.T) {
	t.Run("status filter is validated", func(t *testing.T) {
		bad := "unknown"
		svc := NewService(&fakeRepo{}, &fakeCache{}, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("returns converted bookings", func(t *testing.T) {
		repo := &fakeRepo{listResult: []*domain.Booking{confirmedBooking()}}
		svc := NewService(repo, &fakeCache{}, nopLogger{})

		status := string(domain.StatusConfirmed)
		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "b-1", resp.Bookings[0].ID)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("confirmed booking is cancelled and cache invalidated", func(t *testing.T) {
		repo := &fakeRepo{booking: confirmedBooking()}
		cache := &fakeCache{}
		svc := NewService(repo, cache, nopLogger{})

		err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{Reason: "клиент отменил"})
		require.NoError(t, err)

		assert.Equal(t, "клиент отменил", repo.cancelReason)
		require.Len(t, cache.invalidated, 1)
		assert.True(t, domain.IsSameDay(repo.booking.AppointmentDate, cache.invalidated[0]))
	})

	t.Run("reason is truncated to the domain limit", func(t *testing.T) {
		repo := &fakeRepo{booking: confirmedBooking()}
		svc := NewService(repo, &fakeCache{}, nopLogger{})

		long := strings.Repeat("x", domain.MaxCancellationReasonLength+50)
		err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{Reason: long})
		require.NoError(t, err)
		assert.Len(t, repo.cancelReason, domain.MaxCancellationReasonLength)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCancelled
		svc := NewService(&fakeRepo{booking: b}, &fakeCache{}, nopLogger{})

		err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("lost race between read and update", func(t *testing.T) {
		repo := &fakeRepo{booking: confirmedBooking(), cancelErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &fakeCache{}, nopLogger{})

		err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeCache{}, nopLogger{})

		err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Complete(t *testing.T) {
	t.Run("confirmed booking is completed", func(t *testing.T) {
		repo := &fakeRepo{booking: confirmedBooking()}
		cache := &fakeCache{}
		svc := NewService(repo, cache, nopLogger{})

		err := svc.Complete(context.Background(), "b-1")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCompleted, repo.updateStatus)
		assert.Len(t, cache.invalidated, 1)
	})

	t.Run("completed booking is terminal", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCompleted
		svc := NewService(&fakeRepo{booking: b}, &fakeCache{}, nopLogger{})

		err := svc.Complete(context.Background(), "b-1")
		assert.ErrorIs(t, err, ErrCannotComplete)
	})

	t.Run("repository failure maps to internal", func(t *testing.T) {
		repo := &fakeRepo{booking: confirmedBooking(), updateErr: errors.New("connection refused")}
		svc := NewService(repo, &fakeCache{}, nopLogger{})

		err := svc.Complete(context.Background(), "b-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
