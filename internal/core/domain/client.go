package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a wallet holder with a cash balance in currency minor
// units. BalanceCents is never negative; every debit is guarded at the
// storage layer.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Document     string    `json:"document"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BalanceCents int64     `json:"balance_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewClient creates a Client with a zero balance.
func NewClient(document, name, email, phone string) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:           uuid.New(),
		Document:     document,
		Name:         name,
		Email:        email,
		Phone:        phone,
		BalanceCents: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
