package perform_checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
)

// ReservationRepository acesso às reservas dentro da transacção
type ReservationRepository interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error
}

// PaymentRepository leitura do pagamento dentro da mesma transacção,
// para o gate de pagamento não correr contra actualizações concorrentes
type PaymentRepository interface {
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.Payment, error)
}

// CheckinRepository acesso aos registos de check-in
type CheckinRepository interface {
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.CheckinRecord, error)
	Upsert(ctx context.Context, rec *domain.CheckinRecord) error
}

// TransactionManager executa fn numa transacção serializável
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publica eventos de check-in/check-out (best-effort)
type Notifier interface {
	PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error
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
