package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID       uuid.UUID     `json:"spaceId"`
	OwnerID       uuid.UUID     `json:"ownerId"`
	StartDatetime time.Time     `json:"startDatetime"`
	EndDatetime   time.Time     `json:"endDatetime"`
	TotalPrice    float64       `json:"totalPrice"`
	Extras        domain.Extras `json:"extras,omitempty"`
}

// ToServiceRequest converte o request HTTP no modelo do serviço.
// O arrendatário é sempre o utilizador autenticado.
func (r *CreateReservationRequest) ToServiceRequest(renterID uuid.UUID) *models.CreateReservationRequest {
	return &models.CreateReservationRequest{
		SpaceID:       r.SpaceID,
		OwnerID:       r.OwnerID,
		RenterID:      renterID,
		StartDatetime: r.StartDatetime,
		EndDatetime:   r.EndDatetime,
		TotalPrice:    r.TotalPrice,
		Extras:        r.Extras,
	}
}
