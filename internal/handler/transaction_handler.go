package handler

import (
	"net/http"

	"sutbazar/internal/service"

	"github.com/gin-gonic/gin"
)

const transactionHistoryLimit = 50

type TransactionHandler struct {
	ledger service.LedgerRepo
}

func NewTransactionHandler(ledger service.LedgerRepo) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := userIDFromRequest(c)
	if !ok {
		return
	}
	entries, err := h.ledger.ListByUser(userID, transactionHistoryLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
