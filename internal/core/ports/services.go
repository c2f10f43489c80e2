package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// TokenNotifier delivers a confirmation token out of band. Delivery is
// best-effort: a failure must never change the outcome of the ledger
// operation that triggered it.
type TokenNotifier interface {
	DeliverToken(ctx context.Context, emailAddress, sessionID, token6 string) error
}

// ClientLookupCache is a best-effort cache from document+phone to client ID.
// Client identity is immutable, so entries never go stale; balances are never
// cached.
type ClientLookupCache interface {
	GetClientID(ctx context.Context, document, phone string) (uuid.UUID, bool, error)
	SetClientID(ctx context.Context, document, phone string, id uuid.UUID, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// LedgerService is the wallet ledger and payment-confirmation state machine.
type LedgerService interface {
	RegisterClient(ctx context.Context, in RegisterClientInput) (uuid.UUID, error)
	// TopUp credits the balance atomically and returns the new balance.
	TopUp(ctx context.Context, document, phone string, amountCents int64) (int64, error)
	// InitiatePayment creates a PENDING session and returns its session ID.
	// The confirmation token travels only through the notification channel.
	InitiatePayment(ctx context.Context, document, phone string, amountCents int64) (string, error)
	// ConfirmPayment resolves a PENDING session exactly once and returns the
	// client's new balance.
	ConfirmPayment(ctx context.Context, sessionID, token6 string) (int64, error)
	Balance(ctx context.Context, document, phone string) (int64, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListSessions(ctx context.Context, document, phone string) ([]domain.PaymentSession, error)
	// RevealToken is a privileged diagnostic lookup; the transport layer must
	// keep it unreachable unless explicitly enabled.
	RevealToken(ctx context.Context, sessionID string) (string, error)
}

// RegisterClientInput holds validated input for client registration.
type RegisterClientInput struct {
	Document string
	Name     string
	Email    string
	Phone    string
}
