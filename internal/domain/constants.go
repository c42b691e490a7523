package domain

// Default lifecycle configuration values
const (
	// DefaultCheckinGraceMinutes tolerância por omissão antes do início
	// da janela durante a qual o check-in já é aceite
	DefaultCheckinGraceMinutes = 30

	// DefaultOwnerBypassesPaymentGate por omissão o check-in manual do
	// dono dispensa a verificação de pagamento
	DefaultOwnerBypassesPaymentGate = true
)

// Identificadores de quem cancelou a reserva
const (
	CancelledByRenter = "renter"
	CancelledByOwner  = "owner"
)

// InactiveStatuses estados que já não ocupam a janela da reserva.
// Usado na filtragem do dashboard do dono.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusFinished,
}
