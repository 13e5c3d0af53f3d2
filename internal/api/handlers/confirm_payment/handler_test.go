package confirm_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confirmPayment "github.com/parkease/parkease-backend/internal/usecase/confirm_payment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *confirmPayment.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, bookingID int64) (*confirmPayment.Response, error) {
	return f.resp, f.err
}

func doRequest(t *testing.T, h *Handler, bookingID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/confirm-payment", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &confirmPayment.Response{
		ID:            1,
		SlotID:        7,
		DriverName:    "Ravi",
		VehicleNumber: "KA01AB1234",
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Amount:        60,
		Status:        "CONFIRMED",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFIRMED", body.Status)
	assert.Equal(t, 60.0, body.Amount)
}

func TestHandle_InvalidID(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: confirmPayment.ErrBookingNotFound}, nopLogger{})

	rec := doRequest(t, h, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AlreadyConfirmed(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: confirmPayment.ErrAlreadyConfirmed}, nopLogger{})

	rec := doRequest(t, h, "1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: confirmPayment.ErrInternal}, nopLogger{})

	rec := doRequest(t, h, "1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
