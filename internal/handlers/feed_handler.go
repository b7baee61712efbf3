package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gulfacorns/internal/services"
)

// FeedHandler serves the dashboard feed.
type FeedHandler struct {
	feedService services.FeedServicer
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService services.FeedServicer) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed returns recent activity and balances.
// @Summary     Dashboard feed
// @Description Recent purchases and lots, pending and invested totals and the current rule (null when unset)
// @Tags        feed
// @Produce     json
// @Success     200 {object} services.Feed
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	feed, err := h.feedService.GetFeed(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}
