package get_space_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kumbila/reservation-service/internal/api/handlers"
	"github.com/kumbila/reservation-service/internal/api/middleware"
	"github.com/kumbila/reservation-service/internal/service/reservations"
	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

const (
	msgInvalidSpaceID = "ID de espaço inválido"
	msgMissingUserID  = "utilizador não autenticado"
	msgForbidden      = "acesso negado"
	msgInvalidFilter  = "filtro inválido"

	dateLayout = "2006-01-02"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/reservations?status=&startDate=&endDate=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := uuid.Parse(vars["spaceId"])
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/reservations - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /spaces/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSpaceReservationsRequest{
		UserID:  userID,
		SpaceID: spaceID,
	}

	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("startDate"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.logger.Warn("GET /spaces/{id}/reservations - Invalid startDate %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.StartDate = &start
	}
	if raw := query.Get("endDate"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.logger.Warn("GET /spaces/{id}/reservations - Invalid endDate %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.EndDate = &end
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	list, err := h.service.GetSpaceReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /spaces/{id}/reservations - Access denied: space_id=%s, user_id=%s",
				spaceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/reservations - Invalid filter: space_id=%s", spaceID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /spaces/{id}/reservations - Failed: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
