package handler

import (
	"strings"
	"time"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment session endpoints.
type PaymentHandler struct {
	ledgerSvc ports.LedgerService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledgerSvc ports.LedgerService) *PaymentHandler {
	return &PaymentHandler{ledgerSvc: ledgerSvc}
}

// Initiate handles POST /api/v1/payments/initiate.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sessionID, err := h.ledgerSvc.InitiatePayment(c.Request.Context(), req.Document, req.Phone, req.AmountCents)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.InitiatePaymentResponse{
		SessionID: sessionID,
		Status:    string(domain.SessionStatusPending),
	})
}

// Confirm handles POST /api/v1/payments/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	balance, err := h.ledgerSvc.ConfirmPayment(c.Request.Context(), req.SessionID, req.Token6)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConfirmPaymentResponse{
		SessionID:    req.SessionID,
		Status:       string(domain.SessionStatusConfirmed),
		BalanceCents: balance,
	})
}

// ListSessions handles GET /api/v1/payments/sessions?document=..&phone=..
func (h *PaymentHandler) ListSessions(c *gin.Context) {
	document := strings.TrimSpace(c.Query("document"))
	phone := strings.TrimSpace(c.Query("phone"))
	if document == "" || phone == "" {
		response.Error(c, apperror.Validation("document and phone query parameters are required"))
		return
	}

	sessions, err := h.ledgerSvc.ListSessions(c.Request.Context(), document, phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, toSessionResponse(&sessions[i]))
	}
	response.OK(c, items)
}

// RevealToken handles GET /api/v1/payments/sessions/:sessionId/token. The
// route is only registered when token exposure is enabled in config.
func (h *PaymentHandler) RevealToken(c *gin.Context) {
	sessionID := c.Param("sessionId")

	token, err := h.ledgerSvc.RevealToken(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{SessionID: sessionID, Token6: token})
}

func toSessionResponse(s *domain.PaymentSession) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:   s.SessionID,
		AmountCents: s.AmountCents,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
