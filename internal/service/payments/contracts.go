package payments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
)

// PaymentRepository interface do repositório de pagamentos
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, at time.Time) error
	AttachProof(ctx context.Context, id uuid.UUID, proofPath string) error
}

// ReservationRepository acesso mínimo às reservas, para validar o valor
// e os acessos na criação do pagamento
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
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

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
