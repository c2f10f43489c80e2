package handler

import (
	"time"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles client registration and listing endpoints.
type ClientHandler struct {
	ledgerSvc ports.LedgerService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(ledgerSvc ports.LedgerService) *ClientHandler {
	return &ClientHandler{ledgerSvc: ledgerSvc}
}

// Register handles POST /api/v1/clients/register.
func (h *ClientHandler) Register(c *gin.Context) {
	var req dto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	id, err := h.ledgerSvc.RegisterClient(c.Request.Context(), ports.RegisterClientInput{
		Document: req.Document,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterClientResponse{ClientID: id.String()})
}

// List handles GET /api/v1/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.ledgerSvc.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, toClientResponse(&clients[i]))
	}
	response.OK(c, items)
}

func toClientResponse(c *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ClientID:     c.ID.String(),
		Document:     c.Document,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		BalanceCents: c.BalanceCents,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
