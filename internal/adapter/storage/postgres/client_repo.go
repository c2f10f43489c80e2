package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const clientColumns = `id, document, name, email, phone, balance_cents, created_at, updated_at`

// ClientRepo implements ports.ClientRepository.
type ClientRepo struct {
	pool Pool
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(pool Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create inserts a new client. Unique indexes on document and email back the
// registration duplicate check; violations map to ports.ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Document, c.Name, c.Email, c.Phone,
		c.BalanceCents, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID fetches a client by its UUID.
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c := &domain.Client{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Document, &c.Name, &c.Email, &c.Phone,
		&c.BalanceCents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return c, nil
}

// GetByDocumentAndPhone fetches a client matching both fields exactly.
func (r *ClientRepo) GetByDocumentAndPhone(ctx context.Context, document, phone string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE document = $1 AND phone = $2`

	c := &domain.Client{}
	err := r.pool.QueryRow(ctx, query, document, phone).Scan(
		&c.ID, &c.Document, &c.Name, &c.Email, &c.Phone,
		&c.BalanceCents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by document and phone: %w", err)
	}
	return c, nil
}

// FindByDocumentOrEmail fetches any client sharing the document or email.
func (r *ClientRepo) FindByDocumentOrEmail(ctx context.Context, document, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE document = $1 OR email = $2 LIMIT 1`

	c := &domain.Client{}
	err := r.pool.QueryRow(ctx, query, document, email).Scan(
		&c.ID, &c.Document, &c.Name, &c.Email, &c.Phone,
		&c.BalanceCents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by document or email: %w", err)
	}
	return c, nil
}

// AdjustBalance applies a single conditional UPDATE so concurrent callers
// serialize at the balance field. The guard `balance_cents + delta >= 0`
// makes a negative balance unreachable; a vanished row maps to
// ports.ErrInsufficientBalance because clients are never deleted in scope.
func (r *ClientRepo) AdjustBalance(ctx context.Context, clientID uuid.UUID, deltaCents int64) (*domain.Client, error) {
	query := `UPDATE clients
		SET balance_cents = balance_cents + $1, updated_at = NOW()
		WHERE id = $2 AND balance_cents + $1 >= 0
		RETURNING ` + clientColumns

	c := &domain.Client{}
	err := r.pool.QueryRow(ctx, query, deltaCents, clientID).Scan(
		&c.ID, &c.Document, &c.Name, &c.Email, &c.Phone,
		&c.BalanceCents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrInsufficientBalance
		}
		return nil, fmt.Errorf("adjust client balance: %w", err)
	}
	return c, nil
}

// List returns all clients, oldest first.
func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(
			&c.ID, &c.Document, &c.Name, &c.Email, &c.Phone,
			&c.BalanceCents, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}
	return clients, nil
}
