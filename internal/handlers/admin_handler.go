package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/logger"
)

// Migrator applies pending schema migrations.
type Migrator interface {
	RunMigrations() error
}

// AdminHandler handles operational endpoints.
type AdminHandler struct {
	migrator Migrator
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(migrator Migrator) *AdminHandler {
	return &AdminHandler{migrator: migrator}
}

// RunMigrations applies pending migrations.
// @Summary     Apply migrations
// @Tags        admin
// @Produce     json
// @Param       X-Migrate-Token header string true "Migration token"
// @Success     200 {object} map[string]string
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     500 {object} ErrorResponse "Migration failed"
// @Failure     503 {object} ErrorResponse "Not configured"
// @Router      /admin/migrations [post]
func (h *AdminHandler) RunMigrations(c *gin.Context) {
	if err := h.migrator.RunMigrations(); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrMigrationFailed, err))
		return
	}

	logger.Get().Info("migrations applied via admin endpoint")
	c.JSON(http.StatusOK, gin.H{"status": "migrated"})
}
