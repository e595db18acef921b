package analytics

import (
	"errors"

	"cfpanel/internal/account"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
)

// Handler handles analytics API requests
type Handler struct {
	source *panel.ClientSource
}

// NewHandler creates a new analytics handler
func NewHandler(source *panel.ClientSource) *Handler {
	return &Handler{source: source}
}

// Get returns the dashboard summary for the requested zone (query parameter
// "zoneId") or the account's selected zone. A response the provider answered
// but that lacks required fields comes back as null data, not an error.
// GET /api/v1/analytics
func (h *Handler) Get(c *gin.Context) {
	zoneID, err := h.source.Zone(c.Query("zoneId"))
	if err != nil {
		failZone(c, err)
		return
	}

	client, err := h.source.Client()
	if err != nil {
		failZone(c, err)
		return
	}

	summary, err := client.GetAnalytics(c.Request.Context(), zoneID)
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OK(c, summary)
}

func failZone(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrNotConfigured):
		httpx.FailErr(c, httpx.ErrStateConflict("cloudflare account not configured"))
	case errors.Is(err, panel.ErrNoZoneSelected):
		httpx.FailErr(c, httpx.ErrStateConflict("no zone selected"))
	default:
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load account", err))
	}
}
