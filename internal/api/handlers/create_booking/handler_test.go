package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/KKKircheff/GTP-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"customerName": "Иван Иванов",
	"phone": "+359881234567",
	"licensePlate": "CB1234AK",
	"vehicleType": "car",
	"appointmentDate": "2026-09-16",
	"appointmentTime": "10:30",
	"isOnlineBooking": true
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			ID:                 "b-1",
			ConfirmationNumber: "AC20260916ABCDEF",
			AppointmentDate:    time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			AppointmentTime:    "10:30",
			LicensePlate:       "CB1234AK",
			VehicleType:        "car",
			Price:              55,
			Status:             "confirmed",
			CreatedAt:          time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		}}

		rec := doRequest(t, uc, validBody)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp BookingCreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "AC20260916ABCDEF", resp.ConfirmationNumber)
		assert.Equal(t, "2026-09-16", resp.AppointmentDate)
		assert.Equal(t, 55, resp.Price)

		// Date and time were parsed before reaching the use case
		require.NotNil(t, uc.lastReq)
		assert.Equal(t, "10:30", uc.lastReq.StartTime.String())
		assert.True(t, uc.lastReq.IsOnlineBooking)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		body := strings.Replace(validBody, "2026-09-16", "16.09.2026", 1)
		rec := doRequest(t, &fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}
		rec := doRequest(t, uc, validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		for _, ucErr := range []error{
			createBooking.ErrInvalidInput,
			createBooking.ErrInvalidDate,
			createBooking.ErrDateTooFarInFuture,
			createBooking.ErrInvalidTimeSlot,
			createBooking.ErrTooLateToBook,
		} {
			rec := doRequest(t, &fakeUseCase{err: ucErr}, validBody)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "error %v", ucErr)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrInternal}
		rec := doRequest(t, uc, validBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
