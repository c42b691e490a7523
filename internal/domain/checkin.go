package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckinRecord regista a presença física associada a uma reserva.
// Existe no máximo um registo por reserva; é criado de forma lazy
// na primeira tentativa de check-in.
type CheckinRecord struct {
	ID            uuid.UUID
	ReservationID uuid.UUID

	CheckinTime  *time.Time
	CheckoutTime *time.Time

	// true quando o check-in foi feito pelo dono do espaço a ler o
	// QR code do arrendatário, em vez do fluxo self-service
	VerifiedByOwner bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCheckinRecord cria um registo vazio para a reserva
func NewCheckinRecord(reservationID uuid.UUID) *CheckinRecord {
	return &CheckinRecord{
		ID:            uuid.New(),
		ReservationID: reservationID,
	}
}

// HasCheckedIn returns true if check-in already happened
func (c *CheckinRecord) HasCheckedIn() bool {
	return c.CheckinTime != nil
}

// HasCheckedOut returns true if check-out already happened
func (c *CheckinRecord) HasCheckedOut() bool {
	return c.CheckoutTime != nil
}

// IsCompleted returns true if both check-in and check-out happened
func (c *CheckinRecord) IsCompleted() bool {
	return c.HasCheckedIn() && c.HasCheckedOut()
}
