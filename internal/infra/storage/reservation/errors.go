package reservation

import "errors"

var (
	// ErrReservationNotFound devolvido quando a reserva não existe
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery devolvido quando a construção do SQL falha
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery devolvido quando a execução do SQL falha
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow devolvido quando o scan do resultado falha
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
