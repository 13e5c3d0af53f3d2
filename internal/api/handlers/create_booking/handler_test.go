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

	"github.com/parkease/parkease-backend/internal/api/middleware"
	"github.com/parkease/parkease-backend/internal/domain"
	createBooking "github.com/parkease/parkease-backend/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, h *Handler, body string, identity *middleware.Identity) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if identity != nil {
		req = req.WithContext(middleware.ContextWithIdentity(req.Context(), identity))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func driverIdentity() *middleware.Identity {
	return &middleware.Identity{
		DriverName: "Ravi Kumar",
		Email:      "ravi@example.com",
		Role:       domain.RoleDriver,
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:            1,
		SlotID:        7,
		SlotCode:      "S7",
		DriverName:    "Ravi Kumar",
		VehicleNumber: "KA01AB1234",
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Amount:        60,
		Status:        "PENDING",
	}}
	h := NewHandler(uc, nopLogger{})

	body := `{"slotId":7,"vehicleNumber":"KA01AB1234","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z"}`
	rec := doRequest(t, h, body, driverIdentity())

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Имя водителя берется из токена, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Ravi Kumar", uc.gotReq.DriverName)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "S7", resp.SlotCode)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandle_NoIdentity(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := `{"slotId":7,"vehicleNumber":"KA01AB1234","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z"}`
	rec := doRequest(t, h, body, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BadTimeFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := `{"slotId":7,"vehicleNumber":"KA01AB1234","startTime":"2026-09-01","endTime":"2026-09-01T12:00:00Z"}`
	rec := doRequest(t, h, body, driverIdentity())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrSlotNotAvailable}, nopLogger{})

	body := `{"slotId":7,"vehicleNumber":"KA01AB1234","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z"}`
	rec := doRequest(t, h, body, driverIdentity())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SlotNotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrSlotNotFound}, nopLogger{})

	body := `{"slotId":99,"vehicleNumber":"KA01AB1234","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z"}`
	rec := doRequest(t, h, body, driverIdentity())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
