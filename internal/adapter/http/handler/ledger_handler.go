package handler

import (
	"github.com/Bamzhie/hedera/internal/core/ports"
	"github.com/Bamzhie/hedera/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the ledger façade endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// CreateAccount handles POST /hedera/create-account.
func (h *LedgerHandler) CreateAccount(c *gin.Context) {
	account, err := h.ledgerSvc.CreateAccount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Account created successfully", account)
}

// TransferHbar handles POST /hedera/transfer.
func (h *LedgerHandler) TransferHbar(c *gin.Context) {
	result, err := h.ledgerSvc.TransferHbar(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transfer completed", result)
}

// QueryBalance handles GET /hedera/balance/:account_id.
// Failures are embedded in the result body, so this always responds 200.
func (h *LedgerHandler) QueryBalance(c *gin.Context) {
	accountID := c.Param("account_id")
	result := h.ledgerSvc.QueryBalance(c.Request.Context(), accountID)
	response.OK(c, "Balance query completed", result)
}

// CreateToken handles GET /hedera/create-token.
func (h *LedgerHandler) CreateToken(c *gin.Context) {
	result, err := h.ledgerSvc.CreateToken(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Token created successfully", result)
}

// AccountDetails handles GET /hedera/details.
func (h *LedgerHandler) AccountDetails(c *gin.Context) {
	details, err := h.ledgerSvc.DeriveAccountDetails(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Account details retrieved", details)
}
