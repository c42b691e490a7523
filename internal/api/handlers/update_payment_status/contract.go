package update_payment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// PaymentService serviço de pagamentos
type PaymentService interface {
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.PaymentResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
