package payment

import "errors"

var (
	// ErrPaymentNotFound devolvido quando o pagamento não existe
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicatePayment devolvido quando a reserva já tem pagamento
	// (a relação reserva-pagamento é 1:1)
	ErrDuplicatePayment = errors.New("payment.repository: reservation already has a payment")

	// ErrBuildQuery devolvido quando a construção do SQL falha
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery devolvido quando a execução do SQL falha
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow devolvido quando o scan do resultado falha
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
