// Package handlers utilitários partilhados de resposta HTTP.
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse corpo JSON das respostas de erro
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON escreve payload como JSON com o status indicado.
// payload nil produz corpo vazio.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest responde 400 com a mensagem indicada
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// RespondUnauthorized responde 401 com a mensagem indicada
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// RespondForbidden responde 403 com a mensagem indicada
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: msg})
}

// RespondNotFound responde 404 com a mensagem indicada
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

// RespondConflict responde 409 com a mensagem indicada
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: msg})
}

// RespondMethodNotAllowed responde 405
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "método não permitido"})
}

// RespondInternalError responde 500 com mensagem genérica.
// O detalhe fica no log do servidor, nunca na resposta.
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "erro interno, tente novamente"})
}

// DecodeJSON descodifica o corpo JSON do pedido para dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
