package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/integrations/notifier"
	"github.com/kumbila/reservation-service/internal/service/reservations/models"
)

// Service serviço de reservas: criação, consulta, confirmação e
// cancelamento. As transições de estado passam sempre pelo motor
// de ciclo de vida; o serviço só orquestra persistência e acessos.
type Service struct {
	reservationRepo ReservationRepository
	lifecycle       domain.Lifecycle
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService cria um novo serviço de reservas
func NewService(
	reservationRepo ReservationRepository,
	lifecycle domain.Lifecycle,
	notif Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		lifecycle:       lifecycle,
		notifier:        notif,
		timeProvider:    RealTimeProvider{},
		logger:          logger,
	}
}

// Create regista um pedido de reserva do arrendatário (estado pending)
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Create: space=%s renter=%s window=[%s, %s)",
		req.SpaceID, req.RenterID,
		req.StartDatetime.Format(time.RFC3339), req.EndDatetime.Format(time.RFC3339))

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	res := &domain.Reservation{
		ID:            uuid.New(),
		SpaceID:       req.SpaceID,
		OwnerID:       req.OwnerID,
		RenterID:      req.RenterID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		TotalPrice:    req.TotalPrice,
		Extras:        req.Extras,
		Status:        domain.StatusPending,
	}

	created, err := s.reservationRepo.Create(ctx, res)
	if err != nil {
		s.logger.Error("Create: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created reservation id=%s", created.ID)
	return models.FromDomainReservation(created), nil
}

// GetByID obtém uma reserva. Só o arrendatário e o dono do espaço
// podem consultá-la.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.RenterID != userID && res.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetRenterReservations obtém o histórico de reservas do arrendatário
func (s *Service) GetRenterReservations(ctx context.Context, req *models.GetRenterReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRenterReservations: renter=%s status=%v", req.RenterID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRenterReservations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.reservationRepo.GetByRenterID(ctx, req.RenterID, domainStatus)
	if err != nil {
		s.logger.Error("GetRenterReservations: repository error for renter=%s: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterReservations: fetched %d reservations for renter=%s", len(list), req.RenterID)
	return models.FromDomainReservationList(list), nil
}

// GetSpaceReservations obtém as reservas de um espaço para o dashboard
// do dono. Só o dono do espaço pode listar.
func (s *Service) GetSpaceReservations(ctx context.Context, req *models.GetSpaceReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetSpaceReservations: space=%s user=%s", req.SpaceID, req.UserID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSpaceReservations: invalid filter for space=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetBySpaceWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSpaceReservations: repository error for space=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: GetSpaceReservations - repository error: %v", ErrInternal, err)
	}

	// A desnormalização do owner_id na reserva permite verificar o
	// acesso sem consultar a tabela de espaços
	for _, res := range list {
		if res.OwnerID != req.UserID {
			s.logger.Warn("GetSpaceReservations: access denied for user=%s to space=%s", req.UserID, req.SpaceID)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetSpaceReservations: fetched %d reservations for space=%s", len(list), req.SpaceID)
	return models.FromDomainReservationList(list), nil
}

// Confirm confirma uma reserva pendente. Só o dono do espaço confirma;
// confirmação e pagamento são desacoplados.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: reservation id=%s by user=%s", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Confirm: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if res.OwnerID != userID {
		s.logger.Warn("Confirm: access denied for user=%s to reservation id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	if rej := s.lifecycle.RequestConfirm(res); rej != nil {
		s.logger.Warn("Confirm: rejected for reservation id=%s: %s", id, rej.Reason)
		return nil, rej
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, res.Status); err != nil {
		s.logger.Error("Confirm: failed to persist status for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	// Best-effort: falha de publicação nunca falha a confirmação
	if err := s.notifier.PublishReservationEvent(ctx, notifier.KeyReservationConfirmed, res); err != nil {
		s.logger.Error("Confirm: failed to publish event for reservation id=%s: %v", id, err)
	}

	s.logger.Info("Confirm: reservation id=%s confirmed", id)
	return models.FromDomainReservation(res), nil
}

// Cancel cancela uma reserva. O arrendatário cancela as suas; o dono
// do espaço cancela reservas do seu espaço.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: reservation id=%s by user=%s", id, req.UserID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	var cancelledBy string
	switch req.UserID {
	case res.RenterID:
		cancelledBy = domain.CancelledByRenter
	case res.OwnerID:
		cancelledBy = domain.CancelledByOwner
	default:
		s.logger.Warn("Cancel: access denied for user=%s to reservation id=%s", req.UserID, id)
		return ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if rej := s.lifecycle.RequestCancel(res, now); rej != nil {
		s.logger.Warn("Cancel: rejected for reservation id=%s: %s", id, rej.Reason)
		return rej
	}

	if err := s.reservationRepo.Cancel(ctx, id, cancelledBy, now); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.notifier.PublishReservationEvent(ctx, notifier.KeyReservationCancelled, res); err != nil {
		s.logger.Error("Cancel: failed to publish event for reservation id=%s: %v", id, err)
	}

	s.logger.Info("Cancel: reservation id=%s cancelled by %s", id, cancelledBy)
	return nil
}

// validateCreateRequest valida o pedido de criação
func validateCreateRequest(req *models.CreateReservationRequest) error {
	if req.SpaceID == uuid.Nil || req.RenterID == uuid.Nil || req.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: spaceId, ownerId and renterId are required", ErrInvalidInput)
	}

	if req.StartDatetime.IsZero() || req.EndDatetime.IsZero() {
		return fmt.Errorf("%w: startDatetime and endDatetime are required", ErrInvalidInput)
	}

	if !req.EndDatetime.After(req.StartDatetime) {
		return ErrInvalidWindow
	}

	if req.TotalPrice < 0 {
		return ErrNegativePrice
	}

	return nil
}
