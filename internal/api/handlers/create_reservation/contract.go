package create_reservation

import (
	"context"

	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

// ReservationService serviço de reservas
type ReservationService interface {
	Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
