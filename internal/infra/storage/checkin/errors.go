package checkin

import "errors"

var (
	// ErrRecordNotFound devolvido quando a reserva ainda não tem registo
	// de check-in (é criado de forma lazy)
	ErrRecordNotFound = errors.New("checkin.repository: checkin record not found")

	// ErrBuildQuery devolvido quando a construção do SQL falha
	ErrBuildQuery = errors.New("checkin.repository: failed to build query")

	// ErrExecQuery devolvido quando a execução do SQL falha
	ErrExecQuery = errors.New("checkin.repository: failed to execute query")

	// ErrScanRow devolvido quando o scan do resultado falha
	ErrScanRow = errors.New("checkin.repository: failed to scan row")
)
