package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/services"
	"gulfacorns/internal/statement"
)

// StatementHandler serves monthly statements.
type StatementHandler struct {
	statementService services.StatementServicer
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementService services.StatementServicer) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// StatementQuery selects the month and output format.
type StatementQuery struct {
	Month  string `form:"month" binding:"omitempty,statement_month"`
	Format string `form:"format" binding:"omitempty,oneof=html md"`
}

// GetStatement renders the monthly statement.
// @Summary     Monthly statement
// @Description Purchases, lots and totals for a month, as HTML (default) or Markdown
// @Tags        statement
// @Produce     html
// @Produce     plain
// @Param       month  query string false "Month as YYYY-MM, defaults to the current month"
// @Param       format query string false "html or md"
// @Success     200 {string} string "Rendered statement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statement [get]
func (h *StatementHandler) GetStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	data, err := h.statementService.GetStatement(userID, q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if q.Format == "md" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(statement.RenderMarkdown(data)))
		return
	}

	page, err := statement.RenderHTML(data)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
