package reservations

import "errors"

var (
	// ErrReservationNotFound devolvido quando a reserva não existe
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAccessDenied devolvido quando o utilizador não pode aceder à reserva
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrInvalidInput devolvido quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInvalidWindow devolvido quando end_datetime não é posterior a start_datetime
	ErrInvalidWindow = errors.New("reservations: end must be after start")

	// ErrNegativePrice devolvido quando o preço total é negativo
	ErrNegativePrice = errors.New("reservations: total price must not be negative")

	// ErrInternal devolvido em erros internos do serviço
	ErrInternal = errors.New("reservations: internal error")
)
