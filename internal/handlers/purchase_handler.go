package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/services"
)

// PurchaseHandler handles purchase requests.
type PurchaseHandler struct {
	purchaseService services.PurchaseServicer
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService services.PurchaseServicer) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreatePurchaseRequest represents a simulated card purchase. Amount accepts a
// JSON number or a decimal string; range checks happen in the service.
type CreatePurchaseRequest struct {
	Merchant string          `json:"merchant" binding:"required,min=1,max=100" example:"Coffee Shop"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"4.50"`
	Currency string          `json:"currency" binding:"omitempty,currency_code" example:"USD"`
}

// CreatePurchase records a purchase and its round-up.
// @Summary     Record a purchase
// @Description Records a purchase, computes its round-up from the current rule and adds it to the pending ledger
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Param       request body CreatePurchaseRequest true "Purchase"
// @Success     201 {object} services.PurchaseResult
// @Failure     400 {object} ErrorResponse "Invalid input or no rule configured"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.purchaseService.RecordPurchase(userID, req.Merchant, req.Amount, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetPurchases lists the user's purchases, newest first.
// @Summary     List purchases
// @Tags        purchases
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Purchase]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /purchases [get]
func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.purchaseService.GetUserPurchases(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
