// Package perform_checkin implementa a operação atómica de validação de
// check-in/check-out de uma reserva: carregar-decidir-gravar dentro de
// uma única transacção serializável. As duas rotas de edge (/checkin e
// /checkout) convergem aqui; cada uma declara a operação pretendida no
// Request, e repetir a mesma operação é recusado sem alterar nada.
package perform_checkin

import (
	"context"
	"errors"
	"fmt"

	"github.com/kumbila/reservation-service/internal/domain"
	checkinRepo "github.com/kumbila/reservation-service/internal/infra/storage/checkin"
	paymentRepo "github.com/kumbila/reservation-service/internal/infra/storage/payment"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/integrations/notifier"
)

// UseCase procedimento de validação de check-in/check-out.
//
// Garantias: a linha da reserva é carregada com FOR UPDATE, por isso
// duas invocações concorrentes para a mesma reserva são serializadas
// pela base de dados: exactamente uma efectua a escrita; a outra
// observa o estado pós-escrita e é recusada (AlreadyCheckedIn /
// AlreadyCompleted). Em caso de recusa nenhuma escrita é feita.
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	checkinRepo     CheckinRepository
	txManager       TransactionManager
	notifier        Notifier
	lifecycle       domain.Lifecycle
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase cria o procedimento de validação
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	checkinRepo CheckinRepository,
	txManager TransactionManager,
	notif Notifier,
	lifecycle domain.Lifecycle,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		checkinRepo:     checkinRepo,
		txManager:       txManager,
		notifier:        notif,
		lifecycle:       lifecycle,
		timeProvider:    RealTimeProvider{},
		logger:          logger,
	}
}

// Execute valida e efectua o check-in ou o check-out da reserva.
// Recusas de negócio são devolvidas como Result{Success:false} com
// error nil; só falhas de sistema produzem error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	uc.logger.Info("PerformCheckin: reservation=%s actor=%v", req.ReservationID, req.ActorID)

	now := uc.timeProvider.Now()

	var result *Result
	var publishKey string
	var publishRes *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Carrega a reserva com lock de escrita: é o ponto único
		// de serialização para pedidos concorrentes
		res, err := uc.reservationRepo.GetByIDForUpdate(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("PerformCheckin: reservation=%s not found", req.ReservationID)
				result = &Result{Success: false, Message: msgReservationMissing}
				return nil
			}
			return fmt.Errorf("%w: load reservation: %v", ErrInternal, err)
		}

		// 2. Pagamento lido na mesma transacção, para a decisão não
		// correr contra uma actualização de estado concorrente
		payment, err := uc.paymentRepo.GetByReservationID(txCtx, req.ReservationID)
		if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return fmt.Errorf("%w: load payment: %v", ErrInternal, err)
		}

		// 3. Registo de presença, criado de forma lazy na primeira tentativa
		rec, err := uc.checkinRepo.GetByReservationID(txCtx, req.ReservationID)
		if err != nil {
			if !errors.Is(err, checkinRepo.ErrRecordNotFound) {
				return fmt.Errorf("%w: load checkin record: %v", ErrInternal, err)
			}
			rec = domain.NewCheckinRecord(req.ReservationID)
		}

		// 4. Aplica o motor à operação pedida
		var rejection *domain.Rejection
		var successMsg string

		switch req.Action {
		case ActionCheckin:
			if rec.IsCompleted() {
				rejection = domain.NewRejection(domain.ReasonAlreadyCompleted)
				break
			}
			manual := req.ActorID != nil && *req.ActorID == res.OwnerID
			rejection = uc.lifecycle.RequestCheckin(res, payment, rec, now, manual)
			successMsg = msgCheckinOK
			publishKey = notifier.KeyCheckinPerformed

		case ActionCheckout:
			rejection = uc.lifecycle.RequestCheckout(res, rec, now)
			successMsg = msgCheckoutOK
			publishKey = notifier.KeyCheckoutPerformed

		default:
			return fmt.Errorf("%w: unknown action %q", ErrInternal, req.Action)
		}

		if rejection != nil {
			uc.logger.Warn("PerformCheckin: reservation=%s rejected: %s", req.ReservationID, rejection.Reason)
			result = &Result{Success: false, Message: rejection.Message}
			publishKey = ""
			return nil
		}

		// 5. Persiste o novo estado e o registo na mesma transacção
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, res.Status); err != nil {
			return fmt.Errorf("%w: persist status: %v", ErrInternal, err)
		}
		if err := uc.checkinRepo.Upsert(txCtx, rec); err != nil {
			return fmt.Errorf("%w: persist checkin record: %v", ErrInternal, err)
		}

		result = &Result{Success: true, Message: successMsg}
		publishRes = res
		return nil
	})

	if err != nil {
		uc.logger.Error("PerformCheckin: reservation=%s failed: %v", req.ReservationID, err)
		return nil, err
	}

	// Notificação fora da transacção; falha nunca altera o resultado
	if result.Success && publishKey != "" && publishRes != nil {
		if err := uc.notifier.PublishReservationEvent(ctx, publishKey, publishRes); err != nil {
			uc.logger.Error("PerformCheckin: publish %s for reservation=%s failed: %v",
				publishKey, req.ReservationID, err)
		}
	}

	uc.logger.Info("PerformCheckin: reservation=%s success=%t message=%q",
		req.ReservationID, result.Success, result.Message)
	return result, nil
}
