package payments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumbila/reservation-service/internal/domain"
	paymentRepo "github.com/kumbila/reservation-service/internal/infra/storage/payment"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/service/payments/models"
)

type fakePaymentRepo struct {
	payments map[uuid.UUID]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*domain.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	for _, existing := range r.payments {
		if existing.ReservationID == p.ReservationID {
			return nil, paymentRepo.ErrDuplicatePayment
		}
	}
	cp := *p
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.payments[cp.ID] = &cp
	return &cp, nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.Payment, error) {
	for _, p := range r.payments {
		if p.ReservationID == reservationID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, paymentRepo.ErrPaymentNotFound
}

func (r *fakePaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, at time.Time) error {
	p, ok := r.payments[id]
	if !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	p.Status = status
	// carimbos definidos uma única vez, como o COALESCE na base de dados
	switch status {
	case domain.PaymentPago:
		if p.PaidAt == nil {
			p.PaidAt = &at
		}
	case domain.PaymentLiberado:
		if p.ReleasedAt == nil {
			p.ReleasedAt = &at
		}
	}
	return nil
}

func (r *fakePaymentRepo) AttachProof(ctx context.Context, id uuid.UUID, proofPath string) error {
	p, ok := r.payments[id]
	if !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	p.PaymentProof = &proofPath
	return nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*domain.Reservation
}

func (r *fakeReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fixture struct {
	svc         *Service
	payments    *fakePaymentRepo
	reservation *domain.Reservation
	now         time.Time
}

func newFixture() *fixture {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	res := &domain.Reservation{
		ID:         uuid.New(),
		SpaceID:    uuid.New(),
		OwnerID:    uuid.New(),
		RenterID:   uuid.New(),
		TotalPrice: 3500,
		Status:     domain.StatusPending,
	}

	payments := newFakePaymentRepo()
	reservations := &fakeReservationRepo{
		reservations: map[uuid.UUID]*domain.Reservation{res.ID: res},
	}

	svc := NewService(payments, reservations, nopLogger{})
	svc.timeProvider = fixedClock{now: now}

	return &fixture{svc: svc, payments: payments, reservation: res, now: now}
}

func (f *fixture) createRequest() *models.CreatePaymentRequest {
	return &models.CreatePaymentRequest{
		ReservationID: f.reservation.ID,
		UserID:        f.reservation.RenterID,
		Amount:        f.reservation.TotalPrice,
		Method:        "mpesa",
	}
}

func TestCreate(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), f.createRequest())

	require.NoError(t, err)
	assert.Equal(t, "pendente", resp.Status)
	assert.Equal(t, "mpesa", resp.Method)
	assert.Equal(t, f.reservation.TotalPrice, resp.Amount)
	assert.Nil(t, resp.PaidAt)
}

func TestCreate_Rejections(t *testing.T) {
	t.Run("metodo desconhecido", func(t *testing.T) {
		f := newFixture()
		req := f.createRequest()
		req.Method = "paypal"

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})

	t.Run("reserva inexistente", func(t *testing.T) {
		f := newFixture()
		req := f.createRequest()
		req.ReservationID = uuid.New()

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("so o arrendatario paga", func(t *testing.T) {
		f := newFixture()
		req := f.createRequest()
		req.UserID = f.reservation.OwnerID

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("valor diferente do total", func(t *testing.T) {
		f := newFixture()
		req := f.createRequest()
		req.Amount = req.Amount - 100

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("segundo pagamento recusado", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Create(context.Background(), f.createRequest())
		require.NoError(t, err)

		_, err = f.svc.Create(context.Background(), f.createRequest())
		assert.ErrorIs(t, err, ErrDuplicatePayment)
	})
}

func TestUpdateStatus_HappyPath(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	userID := f.reservation.RenterID

	resp, err := f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
		UserID: userID,
		Status: "pago",
	})
	require.NoError(t, err)
	assert.Equal(t, "pago", resp.Status)
	require.NotNil(t, resp.PaidAt)
	assert.Equal(t, f.now, *resp.PaidAt)

	resp, err = f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
		UserID: userID,
		Status: "liberado",
	})
	require.NoError(t, err)
	assert.Equal(t, "liberado", resp.Status)
	require.NotNil(t, resp.ReleasedAt)

	// paid_at definido uma única vez
	assert.Equal(t, f.now, *resp.PaidAt)
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	userID := f.reservation.RenterID

	t.Run("pendente nao salta para liberado", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
			UserID: userID,
			Status: "liberado",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("estado desconhecido", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
			UserID: userID,
			Status: "refunded",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("estado terminal nao muda", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
			UserID: userID,
			Status: "erro",
		})
		require.NoError(t, err)

		_, err = f.svc.UpdateStatus(context.Background(), created.ID, &models.UpdatePaymentStatusRequest{
			UserID: userID,
			Status: "pago",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestGetByReservationID(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	t.Run("arrendatario consulta", func(t *testing.T) {
		resp, err := f.svc.GetByReservationID(context.Background(), f.reservation.ID, f.reservation.RenterID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("dono consulta", func(t *testing.T) {
		_, err := f.svc.GetByReservationID(context.Background(), f.reservation.ID, f.reservation.OwnerID)
		assert.NoError(t, err)
	})

	t.Run("terceiro nao consulta", func(t *testing.T) {
		_, err := f.svc.GetByReservationID(context.Background(), f.reservation.ID, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reserva sem pagamento", func(t *testing.T) {
		f2 := newFixture()
		_, err := f2.svc.GetByReservationID(context.Background(), f2.reservation.ID, f2.reservation.RenterID)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestAttachProof(t *testing.T) {
	f := newFixture()

	req := f.createRequest()
	req.Method = "transferencia_bancaria"
	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	t.Run("arrendatario anexa", func(t *testing.T) {
		err := f.svc.AttachProof(context.Background(), created.ID, f.reservation.RenterID, "uploads/proof.pdf")
		require.NoError(t, err)

		p := f.payments.payments[created.ID]
		require.NotNil(t, p.PaymentProof)
		assert.Equal(t, "uploads/proof.pdf", *p.PaymentProof)
	})

	t.Run("caminho vazio", func(t *testing.T) {
		err := f.svc.AttachProof(context.Background(), created.ID, f.reservation.RenterID, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("dono nao anexa", func(t *testing.T) {
		err := f.svc.AttachProof(context.Background(), created.ID, f.reservation.OwnerID, "uploads/other.pdf")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
