package reservation

import "github.com/kumbila/reservation-service/pkg/dbmetrics"

// Reutilizamos os interfaces do dbmetrics para trabalhar com a BD
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
