package attach_payment_proof

import (
	"context"

	"github.com/google/uuid"
)

// PaymentService serviço de pagamentos
type PaymentService interface {
	AttachProof(ctx context.Context, paymentID uuid.UUID, userID uuid.UUID, proofPath string) error
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
