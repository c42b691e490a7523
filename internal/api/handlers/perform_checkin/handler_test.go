package perform_checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumbila/reservation-service/internal/api/middleware"
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
	r.HandleFunc("/api/v1/checkin/{reservationId}", h.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: true, Message: "Check-in realizado com sucesso"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	reservationID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+reservationID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body usecase.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Check-in realizado com sucesso", body.Message)

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, reservationID, uc.gotRequest.ReservationID)
	assert.Equal(t, usecase.ActionCheckin, uc.gotRequest.Action)
	assert.Nil(t, uc.gotRequest.ActorID)
}

func TestHandle_InvalidReservationID(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"reservation_id inválido"}`, w.Body.String())

	// o use case nunca é invocado
	assert.Nil(t, uc.gotRequest)
}

func TestHandle_BusinessRejection(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: false, Message: "Pagamento pendente"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Pagamento pendente"}`, w.Body.String())
}

func TestHandle_SystemError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("tx aborted")}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"erro interno, tente novamente"}`, w.Body.String())
}

func TestHandle_ActorIDFromHeader(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: true, Message: "Check-in realizado com sucesso"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	actorID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+uuid.NewString(), nil)
	req.Header.Set("X-User-ID", actorID.String())
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.gotRequest.ActorID)
	assert.Equal(t, actorID, *uc.gotRequest.ActorID)
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/v1/checkin/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
	}
}

func TestHandle_CORSPreflight(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))
	server := middleware.CORS(router)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/checkin/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET, POST, PATCH, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestHandle_CORSHeadersOnActualResponse(t *testing.T) {
	uc := &fakeUseCase{result: &usecase.Result{Success: true, Message: "Check-in realizado com sucesso"}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))
	server := middleware.CORS(router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
