package create_payment

import (
	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// CreatePaymentRequest HTTP request model
type CreatePaymentRequest struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaymentProof  *string   `json:"paymentProof,omitempty"`
}

// ToServiceRequest converte o request HTTP no modelo do serviço
func (r *CreatePaymentRequest) ToServiceRequest(userID uuid.UUID) *models.CreatePaymentRequest {
	return &models.CreatePaymentRequest{
		ReservationID: r.ReservationID,
		UserID:        userID,
		Amount:        r.Amount,
		Method:        r.Method,
		PaymentProof:  r.PaymentProof,
	}
}
