package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const clientLookupTTL = 1 * time.Hour

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	clientRepo  ports.ClientRepository
	sessionRepo ports.SessionRepository
	cache       ports.ClientLookupCache
	notifier    ports.TokenNotifier
	sessionTTL  time.Duration
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. A sessionTTL of zero
// disables session expiry.
func NewLedgerService(
	clientRepo ports.ClientRepository,
	sessionRepo ports.SessionRepository,
	cache ports.ClientLookupCache,
	notifier ports.TokenNotifier,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		clientRepo:  clientRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
		notifier:    notifier,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// RegisterClient creates a client with a zero balance. Document and email
// must be unique across all clients.
func (s *LedgerServiceImpl) RegisterClient(ctx context.Context, in ports.RegisterClientInput) (uuid.UUID, error) {
	in.Document = strings.TrimSpace(in.Document)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Document == "" || in.Name == "" || in.Email == "" || in.Phone == "" {
		return uuid.Nil, apperror.Validation("document, name, email and phone are required")
	}

	existing, err := s.clientRepo.FindByDocumentOrEmail(ctx, in.Document, in.Email)
	if err != nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("duplicate check: %w", err))
	}
	if existing != nil {
		return uuid.Nil, apperror.ErrDuplicateClient()
	}

	client := domain.NewClient(in.Document, in.Name, in.Email, in.Phone)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// indexes are the source of truth.
		if err == ports.ErrDuplicate {
			return uuid.Nil, apperror.ErrDuplicateClient()
		}
		return uuid.Nil, apperror.InternalError(fmt.Errorf("create client: %w", err))
	}

	s.log.Info().
		Str("client_id", client.ID.String()).
		Msg("Client registered")
	return client.ID, nil
}

// TopUp credits the client's balance in a single conditional update and
// returns the new balance.
func (s *LedgerServiceImpl) TopUp(ctx context.Context, document, phone string, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, apperror.Validation("amount_cents must be greater than zero")
	}

	client, err := s.resolveClient(ctx, document, phone)
	if err != nil {
		return 0, err
	}

	updated, err := s.clientRepo.AdjustBalance(ctx, client.ID, amountCents)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}

	s.log.Info().
		Str("client_id", client.ID.String()).
		Int64("amount_cents", amountCents).
		Int64("balance_cents", updated.BalanceCents).
		Msg("Balance credited")
	return updated.BalanceCents, nil
}

// InitiatePayment creates a PENDING session and sends its token to the
// client's email. The funds check here is advisory only; nothing is reserved
// until confirmation.
func (s *LedgerServiceImpl) InitiatePayment(ctx context.Context, document, phone string, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", apperror.Validation("amount_cents must be greater than zero")
	}

	client, err := s.resolveClient(ctx, document, phone)
	if err != nil {
		return "", err
	}

	if client.BalanceCents < amountCents {
		return "", apperror.ErrInsufficientFunds()
	}

	session, err := domain.NewPaymentSession(client.ID, amountCents)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("new payment session: %w", err))
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", apperror.InternalError(fmt.Errorf("create payment session: %w", err))
	}

	// Best effort. The session is already live; a lost email only means the
	// client cannot confirm it.
	if err := s.notifier.DeliverToken(ctx, client.Email, session.SessionID, session.Token6); err != nil {
		s.log.Warn().Err(err).
			Str("session_id", session.SessionID).
			Msg("Token delivery failed")
	}

	s.log.Info().
		Str("session_id", session.SessionID).
		Str("client_id", client.ID.String()).
		Int64("amount_cents", amountCents).
		Msg("Payment session initiated")
	return session.SessionID, nil
}

// ConfirmPayment settles a PENDING session exactly once. The debit happens
// before the status transition; if another caller wins the transition race
// the debit is compensated with an equal credit.
func (s *LedgerServiceImpl) ConfirmPayment(ctx context.Context, sessionID, token6 string) (int64, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || token6 == "" {
		return 0, apperror.Validation("session_id and token6 are required")
	}

	session, err := s.sessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return 0, apperror.ErrSessionNotFound()
	}

	if session.Status == domain.SessionStatusPending && session.ExpiredAt(time.Now().UTC(), s.sessionTTL) {
		expired, terr := s.sessionRepo.Transition(ctx, sessionID, domain.SessionStatusPending, domain.SessionStatusExpired)
		switch {
		case terr == ports.ErrStateConflict:
			// Someone else settled or expired it first; report the status they
			// left behind.
			session, err = s.sessionRepo.GetBySessionID(ctx, sessionID)
			if err != nil || session == nil {
				return 0, apperror.InternalError(fmt.Errorf("refetch session after expiry race: %w", err))
			}
			return 0, apperror.ErrInvalidSessionState(string(session.Status))
		case terr != nil:
			return 0, apperror.InternalError(fmt.Errorf("expire session: %w", terr))
		default:
			session = expired
		}
	}

	if session.Status != domain.SessionStatusPending {
		return 0, apperror.ErrInvalidSessionState(string(session.Status))
	}

	// Exact string comparison; a mismatch leaves the session PENDING and
	// retryable.
	if session.Token6 != token6 {
		return 0, apperror.ErrInvalidToken()
	}

	// Funds check and debit in one conditional update.
	debited, err := s.clientRepo.AdjustBalance(ctx, session.ClientID, -session.AmountCents)
	if err != nil {
		if err == ports.ErrInsufficientBalance {
			if _, terr := s.sessionRepo.Transition(ctx, sessionID, domain.SessionStatusPending, domain.SessionStatusCancelled); terr != nil && terr != ports.ErrStateConflict {
				s.log.Error().Err(terr).
					Str("session_id", sessionID).
					Msg("Failed to cancel underfunded session")
			}
			return 0, apperror.ErrInsufficientFundsAtConfirmation()
		}
		return 0, apperror.InternalError(fmt.Errorf("debit balance: %w", err))
	}

	if _, err := s.sessionRepo.Transition(ctx, sessionID, domain.SessionStatusPending, domain.SessionStatusConfirmed); err != nil {
		// Lost the settlement race. The debit above must not stand.
		if _, cerr := s.clientRepo.AdjustBalance(ctx, session.ClientID, session.AmountCents); cerr != nil {
			s.log.Error().Err(cerr).
				Str("session_id", sessionID).
				Int64("amount_cents", session.AmountCents).
				Msg("Compensation credit failed, balance is short")
			return 0, apperror.InternalError(fmt.Errorf("compensation credit: %w", cerr))
		}
		if err == ports.ErrStateConflict {
			current, gerr := s.sessionRepo.GetBySessionID(ctx, sessionID)
			if gerr != nil || current == nil {
				return 0, apperror.InternalError(fmt.Errorf("refetch session after settle race: %w", gerr))
			}
			return 0, apperror.ErrInvalidSessionState(string(current.Status))
		}
		return 0, apperror.InternalError(fmt.Errorf("confirm session: %w", err))
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("client_id", session.ClientID.String()).
		Int64("amount_cents", session.AmountCents).
		Msg("Payment confirmed")
	return debited.BalanceCents, nil
}

// Balance returns the client's current balance.
func (s *LedgerServiceImpl) Balance(ctx context.Context, document, phone string) (int64, error) {
	client, err := s.resolveClient(ctx, document, phone)
	if err != nil {
		return 0, err
	}
	return client.BalanceCents, nil
}

// ListClients returns all registered clients.
func (s *LedgerServiceImpl) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list clients: %w", err))
	}
	return clients, nil
}

// ListSessions returns a client's payment sessions, newest first.
func (s *LedgerServiceImpl) ListSessions(ctx context.Context, document, phone string) ([]domain.PaymentSession, error) {
	client, err := s.resolveClient(ctx, document, phone)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list sessions: %w", err))
	}
	return sessions, nil
}

// RevealToken returns the confirmation token of a session. Routing decides
// whether this is reachable at all.
func (s *LedgerServiceImpl) RevealToken(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return "", apperror.ErrSessionNotFound()
	}
	return session.Token6, nil
}

// resolveClient looks up a client by the document+phone pair, consulting the
// lookup cache first. Matching is exact; no normalization beyond trimming.
func (s *LedgerServiceImpl) resolveClient(ctx context.Context, document, phone string) (*domain.Client, error) {
	document = strings.TrimSpace(document)
	phone = strings.TrimSpace(phone)
	if document == "" || phone == "" {
		return nil, apperror.Validation("document and phone are required")
	}

	if s.cache != nil {
		id, found, err := s.cache.GetClientID(ctx, document, phone)
		if err != nil {
			s.log.Warn().Err(err).Msg("Client lookup cache read failed, falling through to DB")
		} else if found {
			client, err := s.clientRepo.GetByID(ctx, id)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("get client by id: %w", err))
			}
			if client != nil {
				return client, nil
			}
		}
	}

	client, err := s.clientRepo.GetByDocumentAndPhone(ctx, document, phone)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get client: %w", err))
	}
	if client == nil {
		return nil, apperror.ErrClientNotFound()
	}

	if s.cache != nil {
		if err := s.cache.SetClientID(ctx, document, phone, client.ID, clientLookupTTL); err != nil {
			s.log.Warn().Err(err).Msg("Client lookup cache write failed")
		}
	}
	return client, nil
}
