package get_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

// ReservationService serviço de reservas
type ReservationService interface {
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ReservationResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
