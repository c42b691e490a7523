package perform_checkout

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	usecase "github.com/kumbila/reservation-service/internal/usecase/perform_checkin"
)

const msgInvalidReservationID = "reservation_id inválido"

// Handler rota de edge do check-out. Simétrica à rota de check-in:
// ambas encaminham para o mesmo procedimento de validação, cada uma
// declarando a operação pretendida.
type Handler struct {
	usecase CheckinUseCase
	logger  Logger
}

func NewHandler(uc CheckinUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: uc,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := uuid.Parse(reservationIDStr)
	if err != nil {
		h.logger.Warn("POST /checkout/{id} - Invalid reservation ID %q: %v", reservationIDStr, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &usecase.Request{
		ReservationID: reservationID,
		Action:        usecase.ActionCheckout,
		ActorID:       middleware.OptionalUserID(r),
	})
	if err != nil {
		h.logger.Error("POST /checkout/{id} - Failed: reservation_id=%s, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Success {
		h.logger.Warn("POST /checkout/{id} - Rejected: reservation_id=%s, message=%q",
			reservationID, result.Message)
		handlers.RespondJSON(w, http.StatusBadRequest, result)
		return
	}

	h.logger.Info("POST /checkout/{id} - Success: reservation_id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
