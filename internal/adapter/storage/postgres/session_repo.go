package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `session_id, client_id, amount_cents, token6, status, created_at, updated_at`

// SessionRepo implements ports.SessionRepository. Sessions are append-only
// except for the status column, which only moves through the compare-and-set
// Transition below.
type SessionRepo struct {
	pool Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(pool Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create inserts a new payment session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.PaymentSession) error {
	query := `INSERT INTO payment_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		s.SessionID, s.ClientID, s.AmountCents, s.Token6,
		s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment session: %w", err)
	}
	return nil
}

// GetBySessionID fetches a session by its opaque ID.
func (r *SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM payment_sessions WHERE session_id = $1`

	s := &domain.PaymentSession{}
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&s.SessionID, &s.ClientID, &s.AmountCents, &s.Token6,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by id: %w", err)
	}
	return s, nil
}

// Transition performs a compare-and-set status change in one statement. The
// WHERE clause on the prior status guards against double-confirmation races;
// zero matched rows maps to ports.ErrStateConflict.
func (r *SessionRepo) Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus) (*domain.PaymentSession, error) {
	query := `UPDATE payment_sessions
		SET status = $1, updated_at = NOW()
		WHERE session_id = $2 AND status = $3
		RETURNING ` + sessionColumns

	s := &domain.PaymentSession{}
	err := r.pool.QueryRow(ctx, query, to, sessionID, from).Scan(
		&s.SessionID, &s.ClientID, &s.AmountCents, &s.Token6,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrStateConflict
		}
		return nil, fmt.Errorf("transition session %s -> %s: %w", from, to, err)
	}
	return s, nil
}

// ListByClient returns a client's sessions, newest first.
func (r *SessionRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.PaymentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM payment_sessions WHERE client_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by client: %w", err)
	}
	defer rows.Close()

	var sessions []domain.PaymentSession
	for rows.Next() {
		var s domain.PaymentSession
		if err := rows.Scan(
			&s.SessionID, &s.ClientID, &s.AmountCents, &s.Token6,
			&s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return sessions, nil
}
