package perform_checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "github.com/kumbila/reservation-service/internal/usecase/perform_checkin"
)

type fakeUseCase struct {
	gotRequest *usecase.Request
	result     *usecase.Result
	err        error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *usecase.Request) (*usecase.Result, error) {
	f.gotRequest = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/checkout/{reservationId}", h.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: true, Message: "Check-out realizado com sucesso"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	reservationID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/"+reservationID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Check-out realizado com sucesso"}`, w.Body.String())

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, reservationID, uc.gotRequest.ReservationID)
	assert.Equal(t, usecase.ActionCheckout, uc.gotRequest.Action)
}

func TestHandle_InvalidReservationID(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"reservation_id inválido"}`, w.Body.String())
	assert.Nil(t, uc.gotRequest)
}

func TestHandle_BusinessRejection(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: false, Message: "Reserva não está em andamento"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Reserva não está em andamento"}`, w.Body.String())
}
