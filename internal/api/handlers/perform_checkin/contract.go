package perform_checkin

import (
	"context"

	usecase "github.com/kumbila/reservation-service/internal/usecase/perform_checkin"
)

// CheckinUseCase procedimento de validação de check-in/check-out
type CheckinUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Result, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
