package get_reservation_payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// PaymentService serviço de pagamentos
type PaymentService interface {
	GetByReservationID(ctx context.Context, reservationID uuid.UUID, userID uuid.UUID) (*models.PaymentResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
