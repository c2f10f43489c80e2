package dto

// RegisterClientRequest is the request body for client registration.
type RegisterClientRequest struct {
	Document string `json:"document" binding:"required,min=1,max=64"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=1,max=32"`
}

// RegisterClientResponse is the response body for successful registration.
type RegisterClientResponse struct {
	ClientID string `json:"client_id"`
}

// TopupRequest is the request body for a balance top-up.
type TopupRequest struct {
	Document    string `json:"document" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

// BalanceResponse is the response for balance queries and top-ups.
type BalanceResponse struct {
	BalanceCents int64 `json:"balance_cents"`
}

// InitiatePaymentRequest is the request body for starting a payment session.
type InitiatePaymentRequest struct {
	Document    string `json:"document" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

// InitiatePaymentResponse carries the session handle. The confirmation token
// is deliberately absent; it travels by email only.
type InitiatePaymentResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// ConfirmPaymentRequest is the request body for settling a payment session.
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Token6    string `json:"token6" binding:"required,len=6,numeric"`
}

// ConfirmPaymentResponse is the response body for a settled payment.
type ConfirmPaymentResponse struct {
	SessionID    string `json:"session_id"`
	Status       string `json:"status"`
	BalanceCents int64  `json:"balance_cents"`
}

// ClientResponse is the per-client item in listings.
type ClientResponse struct {
	ClientID     string `json:"client_id"`
	Document     string `json:"document"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BalanceCents int64  `json:"balance_cents"`
	CreatedAt    string `json:"created_at"`
}

// SessionResponse is the per-session item in listings.
type SessionResponse struct {
	SessionID   string `json:"session_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TokenResponse is the body of the privileged token reveal endpoint.
type TokenResponse struct {
	SessionID string `json:"session_id"`
	Token6    string `json:"token6"`
}
