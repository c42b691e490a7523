package domain

import "time"

// RejectionReason código da razão pela qual uma transição foi recusada
type RejectionReason string

const (
	ReasonNotConfirmed      RejectionReason = "not_confirmed"
	ReasonAlreadyCheckedIn  RejectionReason = "already_checked_in"
	ReasonOutsideWindow     RejectionReason = "outside_window"
	ReasonPaymentRequired   RejectionReason = "payment_required"
	ReasonNotInProgress     RejectionReason = "not_in_progress"
	ReasonAlreadyCheckedOut RejectionReason = "already_checked_out"
	ReasonAlreadyCompleted  RejectionReason = "already_completed"
	ReasonInvalidState      RejectionReason = "invalid_state"
	ReasonTooLateToCancel   RejectionReason = "too_late_to_cancel"
)

// rejectionMessages mensagens curtas, apresentáveis ao utilizador
var rejectionMessages = map[RejectionReason]string{
	ReasonNotConfirmed:      "Reserva não confirmada",
	ReasonAlreadyCheckedIn:  "Check-in já realizado",
	ReasonOutsideWindow:     "Fora do período permitido para check-in",
	ReasonPaymentRequired:   "Pagamento pendente",
	ReasonNotInProgress:     "Reserva não está em andamento",
	ReasonAlreadyCheckedOut: "Check-out já realizado",
	ReasonAlreadyCompleted:  "Reserva já finalizada",
	ReasonInvalidState:      "Estado da reserva não permite esta operação",
	ReasonTooLateToCancel:   "Reserva já não pode ser cancelada",
}

// Rejection recusa de uma transição por regra de negócio. É um valor de
// retorno normal do motor, nunca um erro de sistema: o chamador converte
// em {success:false, message} sem propagar como falha.
type Rejection struct {
	Reason  RejectionReason
	Message string
}

// Error implementa a interface error para uso com errors.As quando
// uma Rejection atravessa camadas que só transportam error
func (r *Rejection) Error() string {
	return string(r.Reason) + ": " + r.Message
}

func reject(reason RejectionReason) *Rejection {
	return &Rejection{Reason: reason, Message: rejectionMessages[reason]}
}

// NewRejection cria uma Rejection com a mensagem padrão da razão, para
// recusas construídas fora do motor
func NewRejection(reason RejectionReason) *Rejection {
	return reject(reason)
}

// Lifecycle motor puro de transições de estado da reserva. Não faz I/O:
// assume que é invocado exactamente uma vez sob a transacção/lock da
// camada de persistência e só altera as estruturas recebidas quando a
// transição é aceite (rejeição => nenhuma mutação).
type Lifecycle struct {
	// Tolerância antes de start_datetime durante a qual o check-in
	// já é permitido
	CheckinGrace time.Duration

	// Quando true, o check-in manual feito pelo dono dispensa o
	// pagamento liquidado
	OwnerBypassesPaymentGate bool
}

// RequestCheckin aplica as regras de check-in. payment pode ser nil
// (nenhum pagamento criado ainda); manual indica o caminho dono-do-espaço.
func (l Lifecycle) RequestCheckin(res *Reservation, payment *Payment, rec *CheckinRecord, now time.Time, manual bool) *Rejection {
	if rec.HasCheckedIn() {
		return reject(ReasonAlreadyCheckedIn)
	}

	if res.Status != StatusConfirmed {
		return reject(ReasonNotConfirmed)
	}

	if !res.WindowContains(now, l.CheckinGrace) {
		return reject(ReasonOutsideWindow)
	}

	if !(manual && l.OwnerBypassesPaymentGate) {
		if payment == nil || !payment.IsSettled() {
			return reject(ReasonPaymentRequired)
		}
	}

	checkin := now
	rec.CheckinTime = &checkin
	rec.VerifiedByOwner = manual
	res.Status = StatusInProgress
	return nil
}

// RequestCheckout aplica as regras de check-out
func (l Lifecycle) RequestCheckout(res *Reservation, rec *CheckinRecord, now time.Time) *Rejection {
	if rec.HasCheckedOut() {
		return reject(ReasonAlreadyCheckedOut)
	}

	if res.Status != StatusInProgress || !rec.HasCheckedIn() {
		return reject(ReasonNotInProgress)
	}

	checkout := now
	rec.CheckoutTime = &checkout
	res.Status = StatusFinished
	return nil
}

// RequestConfirm confirma uma reserva pendente. Confirmação e pagamento
// são desacoplados: o dono pode confirmar antes do pagamento liquidar.
func (l Lifecycle) RequestConfirm(res *Reservation) *Rejection {
	if res.Status != StatusPending {
		return reject(ReasonInvalidState)
	}

	res.Status = StatusConfirmed
	return nil
}

// RequestCancel cancela uma reserva. Permitido a partir de pending ou
// confirmed, até a reserva entrar em andamento, inclusive depois do
// início da janela.
func (l Lifecycle) RequestCancel(res *Reservation, now time.Time) *Rejection {
	switch res.Status {
	case StatusPending, StatusConfirmed:
		// transição permitida
	case StatusInProgress, StatusFinished:
		return reject(ReasonTooLateToCancel)
	default:
		return reject(ReasonInvalidState)
	}

	cancelled := now
	res.Status = StatusCancelled
	res.CancelledAt = &cancelled
	return nil
}
