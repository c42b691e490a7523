package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kumbila/reservation-service/internal/domain"
	"github.com/kumbila/reservation-service/pkg/dbmetrics"
	"github.com/kumbila/reservation-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var paymentColumns = []string{
	"id",
	"reservation_id",
	"amount",
	"method",
	"status",
	"paid_at",
	"released_at",
	"payment_proof",
	"created_at",
	"updated_at",
}

// Repository repositório de pagamentos
type Repository struct {
	db DBExecutor
}

// NewRepository cria um novo repositório de pagamentos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere um novo pagamento. O UNIQUE(reservation_id) do schema
// garante a relação 1:1; a violação é traduzida em ErrDuplicatePayment.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"id",
			"reservation_id",
			"amount",
			"method",
			"status",
			"payment_proof",
		).
		Values(
			p.ID,
			p.ReservationID,
			p.Amount,
			p.Method,
			p.Status,
			p.PaymentProof,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePayment
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID obtém um pagamento pelo ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByReservationID obtém o pagamento da reserva (no máximo um)
func (r *Repository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"reservation_id": reservationID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Payment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ReservationID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.PaidAt,
		&p.ReleasedAt,
		&p.PaymentProof,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan payment: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdateStatus actualiza o estado do pagamento. paid_at e released_at
// são definidos no máximo uma vez: o COALESCE preserva o valor já gravado.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("payments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	switch status {
	case domain.PaymentPago:
		updateBuilder = updateBuilder.Set("paid_at", squirrel.Expr("COALESCE(paid_at, ?)", at))
	case domain.PaymentLiberado:
		updateBuilder = updateBuilder.Set("released_at", squirrel.Expr("COALESCE(released_at, ?)", at))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// AttachProof associa o comprovativo carregado ao pagamento
func (r *Repository) AttachProof(ctx context.Context, id uuid.UUID, proofPath string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("payment_proof", proofPath).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachProof - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachProof - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachProof - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
