package create_payment

import (
	"errors"
	"net/http"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/service/payments"
)

const (
	msgInvalidRequestBody   = "corpo do pedido inválido"
	msgMissingUserID        = "utilizador não autenticado"
	msgReservationNotFound  = "reserva não encontrada"
	msgForbidden            = "acesso negado"
	msgDuplicatePayment     = "a reserva já tem um pagamento"
	msgAmountMismatch       = "o valor tem de ser igual ao total da reserva"
	msgUnknownPaymentMethod = "método de pagamento desconhecido"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /payments - Reservation not found: reservation_id=%s", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /payments - Access denied: reservation_id=%s, user_id=%s",
				req.ReservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrDuplicatePayment):
			h.logger.Warn("POST /payments - Duplicate payment: reservation_id=%s", req.ReservationID)
			handlers.RespondConflict(w, msgDuplicatePayment)

		case errors.Is(err, payments.ErrAmountMismatch):
			h.logger.Warn("POST /payments - Amount mismatch: reservation_id=%s", req.ReservationID)
			handlers.RespondBadRequest(w, msgAmountMismatch)

		case errors.Is(err, payments.ErrUnknownMethod):
			h.logger.Warn("POST /payments - Unknown method %q: reservation_id=%s", req.Method, req.ReservationID)
			handlers.RespondBadRequest(w, msgUnknownPaymentMethod)

		default:
			h.logger.Error("POST /payments - Failed: reservation_id=%s, error=%v", req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created: payment_id=%s, reservation_id=%s",
		created.ID, req.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
