package update_payment_status

import (
	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest converte o request HTTP no modelo do serviço
func (r *UpdatePaymentStatusRequest) ToServiceRequest(userID uuid.UUID) *models.UpdatePaymentStatusRequest {
	return &models.UpdatePaymentStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
