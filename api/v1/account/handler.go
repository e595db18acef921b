package account

import (
	"errors"

	"cfpanel/internal/account"
	"cfpanel/internal/httpx"

	"github.com/gin-gonic/gin"
)

// Handler handles Cloudflare account API requests
type Handler struct {
	store *account.Store
}

// NewHandler creates a new account handler
func NewHandler(store *account.Store) *Handler {
	return &Handler{store: store}
}

// SaveRequest represents the request body for saving account credentials
type SaveRequest struct {
	Email          string `json:"email" binding:"required,email"`
	APIKey         string `json:"apiKey" binding:"required"`
	SelectedZoneID string `json:"selectedZoneId"`
}

// Get returns the stored account record. The API key never leaves the
// server; only its presence is reported.
// GET /api/v1/account
func (h *Handler) Get(c *gin.Context) {
	acc, err := h.store.Get()
	if err != nil {
		if errors.Is(err, account.ErrNotConfigured) {
			httpx.OK(c, gin.H{"configured": false})
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load account", err))
		return
	}

	httpx.OK(c, gin.H{
		"configured":     true,
		"email":          acc.Email,
		"selectedZoneId": acc.SelectedZoneID,
	})
}

// Save stores the Cloudflare credentials, replacing the single record.
// POST /api/v1/account
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}

	acc, err := h.store.Save(req.Email, req.APIKey, req.SelectedZoneID)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to save account", err))
		return
	}

	httpx.OK(c, gin.H{
		"email":          acc.Email,
		"selectedZoneId": acc.SelectedZoneID,
	})
}
