package billing

import (
	"errors"

	"cfpanel/internal/account"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
)

// Handler handles billing API requests
type Handler struct {
	source *panel.ClientSource
}

// NewHandler creates a new billing handler
func NewHandler(source *panel.ClientSource) *Handler {
	return &Handler{source: source}
}

// Cost returns the price of the account's first zone subscription. Accounts
// without a paid subscription get null data.
// GET /api/v1/billing/cost
func (h *Handler) Cost(c *gin.Context) {
	client, err := h.source.Client()
	if err != nil {
		failAccount(c, err)
		return
	}

	cost, err := client.GetCost(c.Request.Context())
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OK(c, cost)
}

func failAccount(c *gin.Context, err error) {
	if errors.Is(err, account.ErrNotConfigured) {
		httpx.FailErr(c, httpx.ErrStateConflict("cloudflare account not configured"))
		return
	}
	httpx.FailErr(c, httpx.ErrDatabaseError("failed to load account", err))
}
