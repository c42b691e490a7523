package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/domain"
	"github.com/kumbila/reservation-service/internal/service/reservations"
	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgNotFound             = "reserva não encontrada"
	msgMissingUserID        = "utilizador não autenticado"
	msgForbidden            = "acesso negado"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{UserID: userID})
	if err != nil {
		var rejection *domain.Rejection
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%s, user_id=%s",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.As(err, &rejection):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Rejected: reservation_id=%s, reason=%s",
				reservationID, rejection.Reason)
			handlers.RespondBadRequest(w, rejection.Message)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Cancelled: reservation_id=%s, user_id=%s",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
