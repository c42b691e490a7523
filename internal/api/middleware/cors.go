package middleware

import "net/http"

// Headers CORS permissivos, incluídos em todas as respostas. O QR de
// check-in pode ser aberto a partir de qualquer origem (webview da app,
// browser do dono), por isso a origem é wildcard.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, PATCH, OPTIONS"
)

// CORS aplica os headers a todas as respostas e responde directamente
// aos preflights OPTIONS com 204 e corpo vazio, sem processamento extra
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
