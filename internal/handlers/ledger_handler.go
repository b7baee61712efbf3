package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/services"
)

// LedgerHandler handles spare-change ledger requests.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// LedgerQuery holds the filters for listing ledger entries.
type LedgerQuery struct {
	pagination.PageRequest
	Status string `form:"status" binding:"omitempty,ledger_status"`
}

// GetEntries lists ledger entries, optionally filtered by status.
// @Summary     List ledger entries
// @Tags        ledger
// @Produce     json
// @Param       status    query string false "pending or settled"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[models.SpareLedgerEntry]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger [get]
func (h *LedgerHandler) GetEntries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q LedgerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.LedgerStatus
	if q.Status != "" {
		s := models.LedgerStatus(q.Status)
		status = &s
	}

	result, err := h.ledgerService.GetUserEntries(userID, status, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPending returns all pending entries with their per-currency totals.
// @Summary     Pending spare change
// @Tags        ledger
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/pending [get]
func (h *LedgerHandler) GetPending(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.ledgerService.ListPending(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.ledgerService.PendingTotals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "totals": totals})
}
