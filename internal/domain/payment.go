package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus estado do pagamento. Os valores seguem o vocabulário
// usado pela plataforma (pendente/pago/liberado/erro/cancelado).
type PaymentStatus string

const (
	PaymentPendente  PaymentStatus = "pendente"
	PaymentPago      PaymentStatus = "pago"
	PaymentLiberado  PaymentStatus = "liberado"
	PaymentErro      PaymentStatus = "erro"
	PaymentCancelado PaymentStatus = "cancelado"
)

// PaymentMethod método de pagamento. Conjunto conhecido mas extensível;
// valores fora da lista são rejeitados na criação.
type PaymentMethod string

const (
	MethodTransferencia PaymentMethod = "transferencia_bancaria"
	MethodMpesa         PaymentMethod = "mpesa"
	MethodEmola         PaymentMethod = "emola"
	MethodMkesh         PaymentMethod = "mkesh"
	MethodNumerario     PaymentMethod = "numerario"
)

// KnownPaymentMethods métodos aceites na criação de pagamentos
var KnownPaymentMethods = []PaymentMethod{
	MethodTransferencia,
	MethodMpesa,
	MethodEmola,
	MethodMkesh,
	MethodNumerario,
}

// IsKnownPaymentMethod reports whether m belongs to the accepted set
func IsKnownPaymentMethod(m PaymentMethod) bool {
	for _, known := range KnownPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Payment represents the payment attached 1:1 to a reservation
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus

	// Definidos exactamente uma vez, na primeira vez que o estado
	// correspondente é atingido
	PaidAt     *time.Time
	ReleasedAt *time.Time

	// Caminho do comprovativo carregado (só para transferência bancária)
	PaymentProof *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSettled returns true if the payment satisfies the check-in gate
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentPago || p.Status == PaymentLiberado
}

// IsTerminal returns true if no further status change is allowed
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentLiberado || p.Status == PaymentErro || p.Status == PaymentCancelado
}

// CanTransitionTo valida a transição de estado do pagamento
func (p *Payment) CanTransitionTo(next PaymentStatus) bool {
	switch p.Status {
	case PaymentPendente:
		return next == PaymentPago || next == PaymentErro || next == PaymentCancelado
	case PaymentPago:
		return next == PaymentLiberado || next == PaymentCancelado
	default:
		return false
	}
}
