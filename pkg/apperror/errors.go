package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation reports malformed input rejected before any ledger operation runs.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Client Registry (CLI) ----

func ErrDuplicateClient() *AppError {
	return New("CLI_001", "A client with this document or email already exists", http.StatusConflict)
}

func ErrClientNotFound() *AppError {
	return New("CLI_002", "Client not found", http.StatusNotFound)
}

// ---- Ledger (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance", http.StatusPaymentRequired)
}

// ErrInsufficientFundsAtConfirmation reports that the balance moved below the
// session amount between initiation and confirmation. The session is cancelled
// and the confirmation cannot be retried.
func ErrInsufficientFundsAtConfirmation() *AppError {
	return New("PAY_002", "Insufficient balance at confirmation; session cancelled", http.StatusPaymentRequired)
}

// ---- Payment Sessions (SES) ----

func ErrSessionNotFound() *AppError {
	return New("SES_001", "Payment session not found", http.StatusNotFound)
}

// ErrInvalidSessionState reports a confirmation against a session that is no
// longer PENDING (already confirmed, cancelled or expired).
func ErrInvalidSessionState(status string) *AppError {
	return New("SES_002", fmt.Sprintf("Payment session is %s, not PENDING", status), http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("SES_003", "Confirmation token does not match", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an infrastructure failure as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
