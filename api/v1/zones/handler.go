package zones

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"cfpanel/internal/account"
	"cfpanel/internal/cache"
	"cfpanel/internal/cloudflare"
	"cfpanel/internal/config"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
)

const zoneCacheKey = "cfpanel:zones"

// Handler handles zone API requests
type Handler struct {
	source *panel.ClientSource
	store  *account.Store
	cache  config.ZoneCacheConfig
}

// NewHandler creates a new zones handler
func NewHandler(source *panel.ClientSource, store *account.Store, cacheCfg config.ZoneCacheConfig) *Handler {
	return &Handler{
		source: source,
		store:  store,
		cache:  cacheCfg,
	}
}

// List returns all zones of the account. The list is served from a
// short-lived Redis cache when enabled; the Cloudflare client itself
// never caches.
// GET /api/v1/zones
func (h *Handler) List(c *gin.Context) {
	if h.cache.Enabled {
		if cached, err := cache.GetString(c.Request.Context(), zoneCacheKey); err == nil && cached != "" {
			var zones []cloudflare.Zone
			if json.Unmarshal([]byte(cached), &zones) == nil {
				httpx.OK(c, zones)
				return
			}
		}
	}

	client, err := h.source.Client()
	if err != nil {
		failAccount(c, err)
		return
	}

	zones, err := client.ListZones(c.Request.Context())
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	if h.cache.Enabled && len(zones) > 0 {
		if data, err := json.Marshal(zones); err == nil {
			ttl := time.Duration(h.cache.TTLSec) * time.Second
			if err := cache.SetString(c.Request.Context(), zoneCacheKey, string(data), ttl); err != nil {
				log.Printf("[Zones] Failed to cache zone list: %v", err)
			}
		}
	}

	httpx.OK(c, zones)
}

// SelectRequest represents the request body for selecting a zone
type SelectRequest struct {
	ZoneID string `json:"zoneId" binding:"required"`
}

// Select persists the selected zone on the account record.
// POST /api/v1/zones/select
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}

	if err := h.store.SelectZone(req.ZoneID); err != nil {
		failAccount(c, err)
		return
	}

	httpx.OK(c, gin.H{"selectedZoneId": req.ZoneID})
}

// failAccount translates account-store failures into API errors.
func failAccount(c *gin.Context, err error) {
	if errors.Is(err, account.ErrNotConfigured) {
		httpx.FailErr(c, httpx.ErrStateConflict("cloudflare account not configured"))
		return
	}
	httpx.FailErr(c, httpx.ErrDatabaseError("failed to load account", err))
}
