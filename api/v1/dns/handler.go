package dns

import (
	"errors"

	"cfpanel/internal/account"
	"cfpanel/internal/cloudflare"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
)

// Handler handles DNS record API requests
type Handler struct {
	source *panel.ClientSource
}

// NewHandler creates a new DNS handler
func NewHandler(source *panel.ClientSource) *Handler {
	return &Handler{source: source}
}

// CreateRequest is the payload for creating a DNS record
type CreateRequest struct {
	Type    string `json:"type" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	Proxied bool   `json:"proxied"`
	TTL     int    `json:"ttl"`
}

// UpdateRequest is the payload for updating a DNS record
type UpdateRequest struct {
	ID      string `json:"id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	Proxied bool   `json:"proxied"`
	TTL     int    `json:"ttl"`
}

// List returns the DNS records of the requested zone.
// GET /api/v1/dns/records
func (h *Handler) List(c *gin.Context) {
	client, zoneID, ok := h.resolve(c)
	if !ok {
		return
	}

	records, err := client.ListDNSRecords(c.Request.Context(), zoneID)
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OK(c, records)
}

// Create adds a DNS record to the requested zone.
// POST /api/v1/dns/records/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	client, zoneID, ok := h.resolve(c)
	if !ok {
		return
	}

	err := client.CreateDNSRecord(c.Request.Context(), zoneID, cloudflare.DNSRecordInput{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
		Proxied: req.Proxied,
		TTL:     req.TTL,
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OKMsg(c, "DNS record created", nil)
}

// Update modifies an existing DNS record.
// POST /api/v1/dns/records/update
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	client, zoneID, ok := h.resolve(c)
	if !ok {
		return
	}

	err := client.UpdateDNSRecord(c.Request.Context(), zoneID, req.ID, cloudflare.DNSRecordInput{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
		Proxied: req.Proxied,
		TTL:     req.TTL,
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OKMsg(c, "DNS record updated", nil)
}

func (h *Handler) resolve(c *gin.Context) (*cloudflare.Client, string, bool) {
	zoneID, err := h.source.Zone(c.Query("zoneId"))
	if err != nil {
		failZone(c, err)
		return nil, "", false
	}

	client, err := h.source.Client()
	if err != nil {
		failZone(c, err)
		return nil, "", false
	}

	return client, zoneID, true
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
