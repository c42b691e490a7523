package attach_payment_proof

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
	msgAccessDenied       = "apenas o locatário pode anexar o comprovativo"
	msgInvalidProof       = "comprovativo inválido"
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

// Handle PATCH /api/v1/payments/{paymentId}/proof
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["paymentId"])
	if err != nil {
		h.logger.Warn("PATCH /payments/{id}/proof - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /payments/{id}/proof - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AttachProofRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payments/{id}/proof - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AttachProof(r.Context(), paymentID, userID, req.PaymentProof); err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("PATCH /payments/{id}/proof - Not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("PATCH /payments/{id}/proof - Access denied: payment_id=%s, user_id=%s",
				paymentID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("PATCH /payments/{id}/proof - Invalid proof: payment_id=%s", paymentID)
			handlers.RespondBadRequest(w, msgInvalidProof)

		default:
			h.logger.Error("PATCH /payments/{id}/proof - Failed: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /payments/{id}/proof - Attached: payment_id=%s", paymentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
