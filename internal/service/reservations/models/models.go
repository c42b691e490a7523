package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus devolvido quando o estado indicado não existe
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CreateReservationRequest pedido de criação de reserva pelo arrendatário
type CreateReservationRequest struct {
	SpaceID       uuid.UUID     `json:"spaceId"`
	OwnerID       uuid.UUID     `json:"ownerId"`
	RenterID      uuid.UUID     `json:"renterId"`
	StartDatetime time.Time     `json:"startDatetime"`
	EndDatetime   time.Time     `json:"endDatetime"`
	TotalPrice    float64       `json:"totalPrice"`
	Extras        domain.Extras `json:"extras,omitempty"`
}

// CancelReservationRequest pedido de cancelamento
type CancelReservationRequest struct {
	UserID uuid.UUID `json:"userId"`
}

// GetRenterReservationsRequest histórico de reservas do arrendatário
type GetRenterReservationsRequest struct {
	RenterID uuid.UUID `json:"renterId"`
	Status   *string   `json:"status,omitempty"`
}

// GetSpaceReservationsRequest reservas de um espaço (dashboard do dono)
type GetSpaceReservationsRequest struct {
	UserID          uuid.UUID  `json:"userId"`
	SpaceID         uuid.UUID  `json:"spaceId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converte o request no filtro de domínio
func (r *GetSpaceReservationsRequest) ToDomainFilter() (domain.SpaceReservationsFilter, error) {
	filter := domain.SpaceReservationsFilter{
		SpaceID:         r.SpaceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ReservationResponse dados de uma reserva
type ReservationResponse struct {
	ID            uuid.UUID     `json:"id"`
	SpaceID       uuid.UUID     `json:"spaceId"`
	OwnerID       uuid.UUID     `json:"ownerId"`
	RenterID      uuid.UUID     `json:"renterId"`
	StartDatetime time.Time     `json:"startDatetime"`
	EndDatetime   time.Time     `json:"endDatetime"`
	TotalPrice    float64       `json:"totalPrice"`
	Extras        domain.Extras `json:"extras,omitempty"`
	Status        string        `json:"status"`

	CancelledBy *string    `json:"cancelledBy,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse lista de reservas
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Conversões

// FromDomainReservation converte a entidade de domínio em DTO
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            res.ID,
		SpaceID:       res.SpaceID,
		OwnerID:       res.OwnerID,
		RenterID:      res.RenterID,
		StartDatetime: res.StartDatetime,
		EndDatetime:   res.EndDatetime,
		TotalPrice:    res.TotalPrice,
		Extras:        res.Extras,
		Status:        string(res.Status),
		CancelledBy:   res.CancelledBy,
		CancelledAt:   res.CancelledAt,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}

// FromDomainReservationList converte a lista de entidades em DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, res := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(res))
	}
	return resp
}

// ToDomainReservationStatus valida e converte a string num estado de domínio
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress,
		domain.StatusFinished, domain.StatusCancelled:
		return domain.ReservationStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
