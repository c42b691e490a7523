package perform_checkin

import "github.com/google/uuid"

// Action operação pedida pela rota de edge
type Action string

const (
	ActionCheckin  Action = "checkin"
	ActionCheckout Action = "checkout"
)

// Request identifica a reserva, a operação pretendida e, opcionalmente,
// quem está a fazer a operação. Quando ActorID é o dono do espaço, o
// check-in segue o caminho manual (verified_by_owner).
type Request struct {
	ReservationID uuid.UUID
	Action        Action
	ActorID       *uuid.UUID
}

// Result resultado de negócio da operação. Success=false com Message
// preenchida é uma recusa esperada, não um erro de sistema: o chamador
// apresenta a mensagem tal como está.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Mensagens de sucesso e das situações detectadas fora do motor
const (
	msgCheckinOK          = "Check-in realizado com sucesso"
	msgCheckoutOK         = "Check-out realizado com sucesso"
	msgReservationMissing = "Reserva não encontrada"
)
