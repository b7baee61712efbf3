package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/services"
)

// InvestHandler handles invest requests.
type InvestHandler struct {
	investService services.InvestServicer
}

// NewInvestHandler creates a new InvestHandler.
func NewInvestHandler(investService services.InvestServicer) *InvestHandler {
	return &InvestHandler{investService: investService}
}

// InvestRequest optionally names the target portfolio.
type InvestRequest struct {
	Portfolio string `json:"portfolio" binding:"max=50" example:"balanced"`
}

// Invest sweeps all pending spare change into invest lots.
// @Summary     Invest now
// @Description Sweeps pending spare change into one lot per currency. The body is optional.
// @Tags        invest
// @Accept      json
// @Produce     json
// @Param       request body InvestRequest false "Target portfolio"
// @Success     200 {object} services.InvestResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invest [post]
func (h *InvestHandler) Invest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.investService.Invest(userID, req.Portfolio)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLots lists invest lots, newest first.
// @Summary     List invest lots
// @Tags        invest
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[models.InvestLot]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invest/lots [get]
func (h *InvestHandler) GetLots(c *gin.Context) {
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

	result, err := h.investService.GetUserLots(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
