package ports

import (
	"context"
	"errors"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// Sentinel conditions surfaced by storage adapters. The ledger engine maps
// them to the caller-facing error taxonomy; adapters never import apperror.
var (
	// ErrDuplicate reports a unique-constraint violation on document or email.
	ErrDuplicate = errors.New("client already exists")

	// ErrInsufficientBalance reports a conditional balance update that would
	// have driven the balance negative.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrStateConflict reports a compare-and-set session transition that found
	// the session in a different state than expected.
	ErrStateConflict = errors.New("session state conflict")
)

// ClientRepository defines persistence operations for clients. It is a
// passive store: the ledger engine is the sole writer of mutable fields.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// GetByDocumentAndPhone matches both fields exactly; returns nil, nil when
	// either mismatches.
	GetByDocumentAndPhone(ctx context.Context, document, phone string) (*domain.Client, error)
	// FindByDocumentOrEmail is the registration duplicate pre-check.
	FindByDocumentOrEmail(ctx context.Context, document, email string) (*domain.Client, error)
	// AdjustBalance applies an atomic conditional increment/decrement and
	// returns the updated client. Returns ErrInsufficientBalance when the
	// delta would drive the balance negative. Concurrent callers acting on
	// the same client serialize at the balance field.
	AdjustBalance(ctx context.Context, clientID uuid.UUID, deltaCents int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// SessionRepository defines persistence operations for payment sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.PaymentSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentSession, error)
	// Transition performs a compare-and-set status change and returns the
	// updated session. Returns ErrStateConflict if the current status does
	// not equal from at the moment of the update.
	Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus) (*domain.PaymentSession, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.PaymentSession, error)
}
