package integration

import (
	"context"
	"errors"
	"sync"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Client Repo ---

// inMemoryClientRepo mirrors the conditional-update semantics of the postgres
// repo: AdjustBalance applies the guard and the write under one lock, so
// concurrent confirmations race exactly as they would against the database.
type inMemoryClientRepo struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*domain.Client
}

func newInMemoryClientRepo() *inMemoryClientRepo {
	return &inMemoryClientRepo{clients: make(map[uuid.UUID]*domain.Client)}
}

func (r *inMemoryClientRepo) Create(ctx context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.clients {
		if existing.Document == c.Document || existing.Email == c.Email {
			return ports.ErrDuplicate
		}
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *inMemoryClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryClientRepo) GetByDocumentAndPhone(ctx context.Context, document, phone string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.Document == document && c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryClientRepo) FindByDocumentOrEmail(ctx context.Context, document, email string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.Document == document || c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryClientRepo) AdjustBalance(ctx context.Context, clientID uuid.UUID, deltaCents int64) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[clientID]
	if !ok {
		return nil, ports.ErrInsufficientBalance
	}
	if c.BalanceCents+deltaCents < 0 {
		return nil, ports.ErrInsufficientBalance
	}
	c.BalanceCents += deltaCents
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, nil
}

func (r *inMemoryClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

// --- In-Memory Session Repo ---

type inMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.PaymentSession
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{sessions: make(map[string]*domain.PaymentSession)}
}

func (r *inMemorySessionRepo) Create(ctx context.Context, s *domain.PaymentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.SessionID] = &cp
	return nil
}

func (r *inMemorySessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Transition is the same compare-and-set the postgres repo performs; only one
// of N racing callers observes the expected prior status.
func (r *inMemorySessionRepo) Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus) (*domain.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.Status != from {
		return nil, ports.ErrStateConflict
	}
	s.Status = to
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, nil
}

func (r *inMemorySessionRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentSession
	for _, s := range r.sessions {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	return out, nil
}

var errDeliveryDown = errors.New("smtp relay unavailable")

// --- Capturing Notifier ---

// capturingNotifier stands in for the SMTP notifier and records the last
// token delivered per session, the way a demo inbox would.
type capturingNotifier struct {
	mu     sync.Mutex
	tokens map[string]string // session ID -> token
	fail   bool
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{tokens: make(map[string]string)}
}

func (n *capturingNotifier) DeliverToken(ctx context.Context, emailAddress, sessionID, token6 string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errDeliveryDown
	}
	n.tokens[sessionID] = token6
	return nil
}

func (n *capturingNotifier) tokenFor(sessionID string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.tokens[sessionID]
}

func (n *capturingNotifier) setFailing(fail bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fail = fail
}
