package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumbila/reservation-service/internal/domain"
	reservationRepo "github.com/kumbila/reservation-service/internal/infra/storage/reservation"
	"github.com/kumbila/reservation-service/internal/service/reservations/models"
	"github.com/kumbila/reservation-service/pkg/ptr"
)

type fakeRepo struct {
	reservations map[uuid.UUID]*domain.Reservation

	createErr error

	cancelledID uuid.UUID
	cancelledBy string
	cancelledAt time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reservations: make(map[uuid.UUID]*domain.Reservation)}
}

func (r *fakeRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	cp := *res
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.reservations[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeRepo) GetByRenterID(ctx context.Context, renterID uuid.UUID, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range r.reservations {
		if res.RenterID != renterID {
			continue
		}
		if status != nil && res.Status != *status {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range r.reservations {
		if res.SpaceID != filter.SpaceID {
			continue
		}
		if !filter.IncludeInactive && !res.IsActive() {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	res, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

func (r *fakeRepo) Cancel(ctx context.Context, id uuid.UUID, cancelledBy string, cancelledAt time.Time) error {
	res, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = domain.StatusCancelled
	res.CancelledBy = &cancelledBy
	res.CancelledAt = &cancelledAt
	r.cancelledID = id
	r.cancelledBy = cancelledBy
	r.cancelledAt = cancelledAt
	return nil
}

type fakeNotifier struct {
	keys []string
}

func (n *fakeNotifier) PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error {
	n.keys = append(n.keys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(repo *fakeRepo, notif *fakeNotifier) *Service {
	return NewService(repo, domain.Lifecycle{CheckinGrace: 30 * time.Minute}, notif, nopLogger{})
}

func seedReservation(repo *fakeRepo, status domain.ReservationStatus) *domain.Reservation {
	res := &domain.Reservation{
		ID:            uuid.New(),
		SpaceID:       uuid.New(),
		OwnerID:       uuid.New(),
		RenterID:      uuid.New(),
		StartDatetime: time.Now().Add(24 * time.Hour),
		EndDatetime:   time.Now().Add(28 * time.Hour),
		TotalPrice:    5000,
		Status:        status,
	}
	repo.reservations[res.ID] = res
	return res
}

func validCreateRequest() *models.CreateReservationRequest {
	return &models.CreateReservationRequest{
		SpaceID:       uuid.New(),
		OwnerID:       uuid.New(),
		RenterID:      uuid.New(),
		StartDatetime: time.Now().Add(24 * time.Hour),
		EndDatetime:   time.Now().Add(28 * time.Hour),
		TotalPrice:    5000,
		Extras:        domain.Extras{"catering": true},
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Len(t, repo.reservations, 1)
}

func TestCreate_Validation(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	t.Run("ids em falta", func(t *testing.T) {
		req := validCreateRequest()
		req.RenterID = uuid.Nil

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("janela invertida", func(t *testing.T) {
		req := validCreateRequest()
		req.EndDatetime = req.StartDatetime.Add(-time.Hour)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("janela vazia", func(t *testing.T) {
		req := validCreateRequest()
		req.EndDatetime = req.StartDatetime

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("preco negativo", func(t *testing.T) {
		req := validCreateRequest()
		req.TotalPrice = -1

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	assert.Empty(t, repo.reservations)
}

func TestGetByID_Access(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})
	res := seedReservation(repo, domain.StatusPending)

	t.Run("arrendatario", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), res.ID, res.RenterID)
		require.NoError(t, err)
		assert.Equal(t, res.ID, resp.ID)
	})

	t.Run("dono do espaco", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), res.ID, res.OwnerID)
		assert.NoError(t, err)
	})

	t.Run("terceiro", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), res.ID, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.New(), res.RenterID)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestConfirm(t *testing.T) {
	repo := newFakeRepo()
	notif := &fakeNotifier{}
	svc := newTestService(repo, notif)
	res := seedReservation(repo, domain.StatusPending)

	t.Run("so o dono confirma", func(t *testing.T) {
		_, err := svc.Confirm(context.Background(), res.ID, res.RenterID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("dono confirma pendente", func(t *testing.T) {
		resp, err := svc.Confirm(context.Background(), res.ID, res.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, []string{"reservation.confirmed"}, notif.keys)
	})

	t.Run("confirmar duas vezes e recusado", func(t *testing.T) {
		_, err := svc.Confirm(context.Background(), res.ID, res.OwnerID)

		var rejection *domain.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, domain.ReasonInvalidState, rejection.Reason)
	})
}

func TestCancel(t *testing.T) {
	t.Run("arrendatario cancela pendente", func(t *testing.T) {
		repo := newFakeRepo()
		notif := &fakeNotifier{}
		svc := newTestService(repo, notif)
		res := seedReservation(repo, domain.StatusPending)

		err := svc.Cancel(context.Background(), res.ID, &models.CancelReservationRequest{UserID: res.RenterID})

		require.NoError(t, err)
		assert.Equal(t, domain.CancelledByRenter, repo.cancelledBy)
		assert.Equal(t, []string{"reservation.cancelled"}, notif.keys)
	})

	t.Run("dono cancela confirmada", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeNotifier{})
		res := seedReservation(repo, domain.StatusConfirmed)

		err := svc.Cancel(context.Background(), res.ID, &models.CancelReservationRequest{UserID: res.OwnerID})

		require.NoError(t, err)
		assert.Equal(t, domain.CancelledByOwner, repo.cancelledBy)
	})

	t.Run("cancelled_at vem do relogio injectado", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeNotifier{})
		res := seedReservation(repo, domain.StatusConfirmed)

		cancelTime := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
		svc.timeProvider = fixedClock{now: cancelTime}

		err := svc.Cancel(context.Background(), res.ID, &models.CancelReservationRequest{UserID: res.RenterID})

		require.NoError(t, err)
		assert.Equal(t, cancelTime, repo.cancelledAt)
		require.NotNil(t, repo.reservations[res.ID].CancelledAt)
		assert.Equal(t, cancelTime, *repo.reservations[res.ID].CancelledAt)
	})

	t.Run("terceiro nao cancela", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeNotifier{})
		res := seedReservation(repo, domain.StatusPending)

		err := svc.Cancel(context.Background(), res.ID, &models.CancelReservationRequest{UserID: uuid.New()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("em andamento ja nao cancela", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeNotifier{})
		res := seedReservation(repo, domain.StatusInProgress)

		err := svc.Cancel(context.Background(), res.ID, &models.CancelReservationRequest{UserID: res.RenterID})

		var rejection *domain.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, domain.ReasonTooLateToCancel, rejection.Reason)
		assert.Equal(t, domain.StatusInProgress, res.Status)
	})
}

func TestGetRenterReservations(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})

	renterID := uuid.New()
	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled} {
		res := seedReservation(repo, status)
		res.RenterID = renterID
	}
	seedReservation(repo, domain.StatusPending) // outro arrendatário

	t.Run("todas", func(t *testing.T) {
		resp, err := svc.GetRenterReservations(context.Background(), &models.GetRenterReservationsRequest{RenterID: renterID})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 3)
	})

	t.Run("filtrado por estado", func(t *testing.T) {
		resp, err := svc.GetRenterReservations(context.Background(), &models.GetRenterReservationsRequest{
			RenterID: renterID,
			Status:   ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, "confirmed", resp.Reservations[0].Status)
	})

	t.Run("estado desconhecido", func(t *testing.T) {
		_, err := svc.GetRenterReservations(context.Background(), &models.GetRenterReservationsRequest{
			RenterID: renterID,
			Status:   ptr.Ptr("whatever"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetSpaceReservations_OwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{})
	res := seedReservation(repo, domain.StatusConfirmed)

	t.Run("dono lista", func(t *testing.T) {
		resp, err := svc.GetSpaceReservations(context.Background(), &models.GetSpaceReservationsRequest{
			UserID:  res.OwnerID,
			SpaceID: res.SpaceID,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})

	t.Run("arrendatario nao lista", func(t *testing.T) {
		_, err := svc.GetSpaceReservations(context.Background(), &models.GetSpaceReservationsRequest{
			UserID:  res.RenterID,
			SpaceID: res.SpaceID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection refused")
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
