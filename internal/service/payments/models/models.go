package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
)

// Request models

// CreatePaymentRequest pedido de iniciação de pagamento pelo arrendatário
type CreatePaymentRequest struct {
	ReservationID uuid.UUID `json:"reservationId"`
	UserID        uuid.UUID `json:"userId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaymentProof  *string   `json:"paymentProof,omitempty"`
}

// UpdatePaymentStatusRequest pedido de actualização do estado do pagamento
type UpdatePaymentStatusRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status string    `json:"status"`
}

// Response models

// PaymentResponse dados de um pagamento
type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservationId"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	ReleasedAt    *time.Time `json:"releasedAt,omitempty"`
	PaymentProof  *string    `json:"paymentProof,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FromDomainPayment converte a entidade de domínio em DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		PaidAt:        p.PaidAt,
		ReleasedAt:    p.ReleasedAt,
		PaymentProof:  p.PaymentProof,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
