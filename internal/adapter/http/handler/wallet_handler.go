package handler

import (
	"strings"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// Topup handles POST /api/v1/wallet/topup.
func (h *WalletHandler) Topup(c *gin.Context) {
	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	balance, err := h.ledgerSvc.TopUp(c.Request.Context(), req.Document, req.Phone, req.AmountCents)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{BalanceCents: balance})
}

// GetBalance handles GET /api/v1/wallet/balance?document=..&phone=..
func (h *WalletHandler) GetBalance(c *gin.Context) {
	document := strings.TrimSpace(c.Query("document"))
	phone := strings.TrimSpace(c.Query("phone"))
	if document == "" || phone == "" {
		response.Error(c, apperror.Validation("document and phone query parameters are required"))
		return
	}

	balance, err := h.ledgerSvc.Balance(c.Request.Context(), document, phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{BalanceCents: balance})
}
