package get_space_reservations

import (
	"context"

	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

// ReservationService serviço de reservas
type ReservationService interface {
	GetSpaceReservations(ctx context.Context, req *models.GetSpaceReservationsRequest) (*models.ReservationListResponse, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
