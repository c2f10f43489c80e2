package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a payment session.
// Transitions are monotonic: PENDING is the only state from which CONFIRMED
// or CANCELLED is reachable; CONFIRMED, CANCELLED and EXPIRED are terminal.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "PENDING"
	SessionStatusConfirmed SessionStatus = "CONFIRMED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
	SessionStatusExpired   SessionStatus = "EXPIRED"
)

// PaymentSession is a token-guarded intent to debit a client's balance.
// Sessions are retained forever as a record of the attempted transaction.
type PaymentSession struct {
	SessionID   string        `json:"session_id"`
	ClientID    uuid.UUID     `json:"client_id"`
	AmountCents int64         `json:"amount_cents"`
	Token6      string        `json:"-"` // confirmation secret, never serialized
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewPaymentSession creates a PENDING session with a fresh session ID and a
// uniformly random 6-digit confirmation token.
func NewPaymentSession(clientID uuid.UUID, amountCents int64) (*PaymentSession, error) {
	token, err := newToken6()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &PaymentSession{
		SessionID:   uuid.New().String(),
		ClientID:    clientID,
		AmountCents: amountCents,
		Token6:      token,
		Status:      SessionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsTerminal returns true if the session is in a final state.
func (s *PaymentSession) IsTerminal() bool {
	return s.Status != SessionStatusPending
}

// ExpiredAt reports whether the session's confirmation window had closed at
// the given instant. A zero ttl disables expiry.
func (s *PaymentSession) ExpiredAt(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return s.Status == SessionStatusPending && now.Sub(s.CreatedAt) > ttl
}

// newToken6 draws a uniform 6-digit numeric string, leading zeros allowed.
func newToken6() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
