package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/roundup"
	"gulfacorns/internal/services"
)

// RuleHandler handles round-up rule requests.
type RuleHandler struct {
	ruleService services.RuleServicer
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(ruleService services.RuleServicer) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

// SetRuleRequest replaces the user's rule. Value accepts a JSON number or a
// decimal string.
type SetRuleRequest struct {
	Type       string          `json:"type" binding:"required,roundup_rule_type" example:"roundup"`
	Value      decimal.Decimal `json:"value" swaggertype:"string" example:"1"`
	Multiplier int             `json:"multiplier" binding:"required,min=1,max=10" example:"1"`
	Currency   string          `json:"currency" binding:"required,currency_code" example:"USD"`
}

// RuleResponse wraps the rule returned by both rule endpoints.
type RuleResponse struct {
	Rule *models.RoundUpRule `json:"rule"`
}

// GetRule returns the current rule, creating the default one on first read.
// @Summary     Get round-up rule
// @Description Returns the user's round-up rule; a default rule is created on first read
// @Tags        rule
// @Produce     json
// @Success     200 {object} RuleResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rule [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rule, err := h.ruleService.GetOrCreateRule(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RuleResponse{Rule: rule})
}

// SetRule replaces the user's rule.
// @Summary     Replace round-up rule
// @Description Replaces the user's round-up rule wholesale
// @Tags        rule
// @Accept      json
// @Produce     json
// @Param       request body SetRuleRequest true "Rule"
// @Success     200 {object} RuleResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rule [put]
func (h *RuleHandler) SetRule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rule, err := h.ruleService.SetRule(userID, roundup.RuleType(req.Type), req.Value, req.Multiplier, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RuleResponse{Rule: rule})
}
