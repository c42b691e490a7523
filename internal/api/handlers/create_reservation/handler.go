package create_reservation

import (
	"errors"
	"net/http"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgMissingUserID      = "utilizador não autenticado"
	msgInvalidWindow      = "a data de fim tem de ser posterior à de início"
	msgNegativePrice      = "o preço total não pode ser negativo"
	msgInvalidInput       = "dados da reserva inválidos"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidWindow):
			h.logger.Warn("POST /reservations - Invalid window: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, reservations.ErrNegativePrice):
			h.logger.Warn("POST /reservations - Negative price: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgNegativePrice)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, renter_id=%s", created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
