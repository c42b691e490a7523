package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/api/handlers"
)

type userIDKey struct{}

// Auth exige o header X-User-ID (preenchido pelo gateway de identidade
// a partir da sessão) e coloca o UUID no context do pedido
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "autenticação necessária")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "identificador de utilizador inválido")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extrai o utilizador autenticado do context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// OptionalUserID lê o X-User-ID directamente do pedido sem o exigir.
// Usado nas rotas de edge de check-in, onde o QR self-service pode
// chegar sem sessão.
func OptionalUserID(r *http.Request) *uuid.UUID {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
