package payments

import "errors"

var (
	// ErrPaymentNotFound devolvido quando o pagamento não existe
	ErrPaymentNotFound = errors.New("payments: payment not found")

	// ErrReservationNotFound devolvido quando a reserva não existe
	ErrReservationNotFound = errors.New("payments: reservation not found")

	// ErrDuplicatePayment devolvido quando a reserva já tem pagamento
	ErrDuplicatePayment = errors.New("payments: reservation already has a payment")

	// ErrAmountMismatch devolvido quando o valor não coincide com o
	// total_price da reserva
	ErrAmountMismatch = errors.New("payments: amount must equal reservation total price")

	// ErrUnknownMethod devolvido quando o método de pagamento não é aceite
	ErrUnknownMethod = errors.New("payments: unknown payment method")

	// ErrInvalidTransition devolvido quando a transição de estado do
	// pagamento não é permitida
	ErrInvalidTransition = errors.New("payments: invalid status transition")

	// ErrAccessDenied devolvido quando o utilizador não pode operar o pagamento
	ErrAccessDenied = errors.New("payments: access denied")

	// ErrInvalidInput devolvido quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("payments: invalid input data")

	// ErrInternal devolvido em erros internos do serviço
	ErrInternal = errors.New("payments: internal error")
)
