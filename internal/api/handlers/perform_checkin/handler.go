package perform_checkin

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	usecase "github.com/kumbila/reservation-service/internal/usecase/perform_checkin"
)

const msgInvalidReservationID = "reservation_id inválido"

// Handler rota de edge do check-in via QR code. O POST pode chegar
// sem sessão (self-service); quando o X-User-ID presente é o dono do
// espaço, a operação segue o caminho manual.
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

// Handle POST /api/v1/checkin/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := uuid.Parse(reservationIDStr)
	if err != nil {
		h.logger.Warn("POST /checkin/{id} - Invalid reservation ID %q: %v", reservationIDStr, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &usecase.Request{
		ReservationID: reservationID,
		Action:        usecase.ActionCheckin,
		ActorID:       middleware.OptionalUserID(r),
	})
	if err != nil {
		// Falha de sistema: detalhe no log, resposta genérica
		h.logger.Error("POST /checkin/{id} - Failed: reservation_id=%s, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Success {
		// Recusa de negócio: 400 com a mensagem apresentável
		h.logger.Warn("POST /checkin/{id} - Rejected: reservation_id=%s, message=%q",
			reservationID, result.Message)
		handlers.RespondJSON(w, http.StatusBadRequest, result)
		return
	}

	h.logger.Info("POST /checkin/{id} - Success: reservation_id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
