package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusFinished   ReservationStatus = "finished"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Extras mapa opaco de serviços extra (catering, som, decoração, ...).
// O motor de ciclo de vida nunca inspecciona o conteúdo; é apenas
// serializado de/para JSONB na base de dados.
type Extras map[string]interface{}

// Value implementa driver.Valuer para gravação em JSONB
func (e Extras) Value() (driver.Value, error) {
	if e == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e)
}

// Scan implementa sql.Scanner para leitura de JSONB
func (e *Extras) Scan(src interface{}) error {
	if src == nil {
		*e = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("domain: cannot scan %T into Extras", src)
	}
	return json.Unmarshal(b, e)
}

// Reservation represents a space reservation in the system
type Reservation struct {
	ID       uuid.UUID
	SpaceID  uuid.UUID
	RenterID uuid.UUID

	// Dono do espaço, desnormalizado para verificação de acessos
	// sem ir à tabela de espaços
	OwnerID uuid.UUID

	StartDatetime time.Time
	EndDatetime   time.Time
	TotalPrice    float64
	Extras        Extras
	Status        ReservationStatus

	CancelledBy *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time window
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusFinished
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// WindowContains reporta se now pertence à janela [start, end) da reserva,
// alargada pelo período de tolerância antes do início
func (r *Reservation) WindowContains(now time.Time, grace time.Duration) bool {
	return !now.Before(r.StartDatetime.Add(-grace)) && now.Before(r.EndDatetime)
}

// SpaceReservationsFilter filtro para o dashboard do dono do espaço
type SpaceReservationsFilter struct {
	SpaceID         uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *ReservationStatus
	IncludeInactive bool
}
