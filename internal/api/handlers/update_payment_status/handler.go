package update_payment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/service/payments"
)

const (
	msgInvalidPaymentID   = "ID de pagamento inválido"
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgMissingUserID      = "utilizador não autenticado"
	msgNotFound           = "pagamento não encontrado"
	msgInvalidStatus      = "estado de pagamento inválido"
	msgInvalidTransition  = "transição de estado não permitida"
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

// Handle PATCH /api/v1/payments/{paymentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["paymentId"])
	if err != nil {
		h.logger.Warn("PATCH /payments/{id}/status - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /payments/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payment, err := h.service.UpdateStatus(r.Context(), paymentID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("PATCH /payments/{id}/status - Not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("PATCH /payments/{id}/status - Invalid status %q: payment_id=%s", req.Status, paymentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, payments.ErrInvalidTransition):
			h.logger.Warn("PATCH /payments/{id}/status - Invalid transition to %q: payment_id=%s",
				req.Status, paymentID)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /payments/{id}/status - Failed: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /payments/{id}/status - Updated: payment_id=%s, status=%s", paymentID, payment.Status)
	handlers.RespondJSON(w, http.StatusOK, payment)
}
