package perform_checkin

import "errors"

var (
	// ErrInternal devolvido em falhas de sistema (persistência, commit).
	// Distinto das recusas de negócio, que são devolvidas como Result
	// com Success=false e nunca como error.
	ErrInternal = errors.New("perform_checkin: internal error")
)
