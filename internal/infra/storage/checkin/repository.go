package checkin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kumbila/reservation-service/internal/domain"
	"github.com/kumbila/reservation-service/pkg/dbmetrics"
	"github.com/kumbila/reservation-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository repositório dos registos de check-in/check-out
type Repository struct {
	db DBExecutor
}

// NewRepository cria um novo repositório de registos de check-in
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByReservationID obtém o registo de check-in da reserva.
// Devolve ErrRecordNotFound se ainda não existir.
func (r *Repository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.CheckinRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"checkin_time",
		"checkout_time",
		"verified_by_owner",
		"created_at",
		"updated_at",
	).
		From("checkin_records").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var rec domain.CheckinRecord
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.ReservationID,
		&rec.CheckinTime,
		&rec.CheckoutTime,
		&rec.VerifiedByOwner,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan record: %v", ErrScanRow, err)
	}

	rec.CreatedAt = createdAt.Time
	rec.UpdatedAt = updatedAt.Time

	return &rec, nil
}

// Upsert grava o registo de check-in. O UNIQUE(reservation_id) garante
// no máximo um registo por reserva; o ON CONFLICT cobre a criação lazy
// na primeira tentativa de check-in.
func (r *Repository) Upsert(ctx context.Context, rec *domain.CheckinRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("checkin_records").
		Columns(
			"id",
			"reservation_id",
			"checkin_time",
			"checkout_time",
			"verified_by_owner",
		).
		Values(
			rec.ID,
			rec.ReservationID,
			rec.CheckinTime,
			rec.CheckoutTime,
			rec.VerifiedByOwner,
		).
		Suffix(`ON CONFLICT (reservation_id) DO UPDATE SET
			checkin_time = COALESCE(checkin_records.checkin_time, EXCLUDED.checkin_time),
			checkout_time = COALESCE(checkin_records.checkout_time, EXCLUDED.checkout_time),
			verified_by_owner = EXCLUDED.verified_by_owner,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
