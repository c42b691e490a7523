package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
	paymentRepo "github.com/kumbila/reservation-service/internal/infra/storage/payment"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

// Service serviço de pagamentos. Cada reserva tem no máximo um
// pagamento; o valor tem de coincidir com o total_price da reserva
// no momento da criação.
type Service struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService cria um novo serviço de pagamentos
func NewService(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		timeProvider:    RealTimeProvider{},
		logger:          logger,
	}
}

// Create inicia um pagamento para a reserva
func (s *Service) Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("Create: payment for reservation=%s by user=%s method=%s amount=%.2f",
		req.ReservationID, req.UserID, req.Method, req.Amount)

	method := domain.PaymentMethod(req.Method)
	if !domain.IsKnownPaymentMethod(method) {
		s.logger.Warn("Create: unknown payment method=%s", req.Method)
		return nil, ErrUnknownMethod
	}

	res, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Create: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Create: repository error for reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Só o arrendatário inicia o pagamento da sua reserva
	if res.RenterID != req.UserID {
		s.logger.Warn("Create: access denied for user=%s to reservation id=%s", req.UserID, req.ReservationID)
		return nil, ErrAccessDenied
	}

	if req.Amount != res.TotalPrice {
		s.logger.Warn("Create: amount mismatch for reservation id=%s: got=%.2f want=%.2f",
			req.ReservationID, req.Amount, res.TotalPrice)
		return nil, ErrAmountMismatch
	}

	p := &domain.Payment{
		ID:            uuid.New(),
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		Method:        method,
		Status:        domain.PaymentPendente,
		PaymentProof:  req.PaymentProof,
	}

	created, err := s.paymentRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicatePayment) {
			s.logger.Warn("Create: reservation id=%s already has a payment", req.ReservationID)
			return nil, ErrDuplicatePayment
		}
		s.logger.Error("Create: failed to create payment for reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: payment id=%s created for reservation=%s", created.ID, req.ReservationID)
	return models.FromDomainPayment(created), nil
}

// GetByReservationID obtém o pagamento de uma reserva
func (s *Service) GetByReservationID(ctx context.Context, reservationID uuid.UUID, userID uuid.UUID) (*models.PaymentResponse, error) {
	s.logger.Info("GetByReservationID: reservation=%s user=%s", reservationID, userID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	if res.RenterID != userID && res.OwnerID != userID {
		s.logger.Warn("GetByReservationID: access denied for user=%s", userID)
		return nil, ErrAccessDenied
	}

	p, err := s.paymentRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByReservationID: repository error for reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(p), nil
}

// UpdateStatus aplica uma transição de estado ao pagamento.
// paid_at/released_at são definidos na primeira vez que o estado
// correspondente é atingido e nunca mais alterados.
func (s *Service) UpdateStatus(ctx context.Context, paymentID uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.PaymentResponse, error) {
	s.logger.Info("UpdateStatus: payment=%s to status=%s by user=%s", paymentID, req.Status, req.UserID)

	next := domain.PaymentStatus(req.Status)
	switch next {
	case domain.PaymentPago, domain.PaymentLiberado, domain.PaymentErro, domain.PaymentCancelado:
		// estado conhecido
	default:
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("UpdateStatus: payment id=%s not found", paymentID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for payment id=%s: %v", paymentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !p.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for payment id=%s", p.Status, next, paymentID)
		return nil, ErrInvalidTransition
	}

	now := s.timeProvider.Now()
	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, next, now); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for payment id=%s: %v", paymentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	p.Status = next
	switch next {
	case domain.PaymentPago:
		if p.PaidAt == nil {
			p.PaidAt = &now
		}
	case domain.PaymentLiberado:
		if p.ReleasedAt == nil {
			p.ReleasedAt = &now
		}
	}

	s.logger.Info("UpdateStatus: payment id=%s moved to status=%s", paymentID, next)
	return models.FromDomainPayment(p), nil
}

// AttachProof associa o comprovativo de transferência ao pagamento
func (s *Service) AttachProof(ctx context.Context, paymentID uuid.UUID, userID uuid.UUID, proofPath string) error {
	s.logger.Info("AttachProof: payment=%s by user=%s", paymentID, userID)

	if proofPath == "" {
		return fmt.Errorf("%w: proof path is required", ErrInvalidInput)
	}

	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("%w: AttachProof - repository error: %v", ErrInternal, err)
	}

	res, err := s.reservationRepo.GetByID(ctx, p.ReservationID)
	if err != nil {
		return fmt.Errorf("%w: AttachProof - repository error: %v", ErrInternal, err)
	}

	if res.RenterID != userID {
		s.logger.Warn("AttachProof: access denied for user=%s to payment id=%s", userID, paymentID)
		return ErrAccessDenied
	}

	if err := s.paymentRepo.AttachProof(ctx, paymentID, proofPath); err != nil {
		s.logger.Error("AttachProof: repository error for payment id=%s: %v", paymentID, err)
		return fmt.Errorf("%w: AttachProof - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AttachProof: proof attached to payment id=%s", paymentID)
	return nil
}
