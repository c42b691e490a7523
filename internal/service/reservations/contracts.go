package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
)

// ReservationRepository interface do repositório de reservas
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByRenterID(ctx context.Context, renterID uuid.UUID, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id uuid.UUID, cancelledBy string, cancelledAt time.Time) error
}

// TimeProvider relógio injectável (para testes)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider relógio real para produção
type RealTimeProvider struct{}

// Now devolve o tempo actual
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Notifier publica eventos do ciclo de vida (best-effort)
type Notifier interface {
	PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
