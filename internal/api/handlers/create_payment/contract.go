package create_payment

import (
	"context"

	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// PaymentService serviço de pagamentos
type PaymentService interface {
	Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
