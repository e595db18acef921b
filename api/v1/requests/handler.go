package requests

import (
	"errors"

	"cfpanel/internal/account"
	"cfpanel/internal/action"
	"cfpanel/internal/cloudflare"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
)

// Handler handles firewall event and security action API requests
type Handler struct {
	source   *panel.ClientSource
	recorder *action.Recorder
}

// NewHandler creates a new requests handler
func NewHandler(source *panel.ClientSource, recorder *action.Recorder) *Handler {
	return &Handler{source: source, recorder: recorder}
}

// DispatchRequest is the payload for applying a security action to a host
type DispatchRequest struct {
	Action string `json:"action" binding:"required"`
	HostIP string `json:"hostIp" binding:"required"`
}

type actionView struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// List returns the most recent firewall events of the requested zone.
// GET /api/v1/requests
func (h *Handler) List(c *gin.Context) {
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

	events, err := client.ListRecentFirewallEvents(c.Request.Context(), zoneID)
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("cloudflare request failed", err))
		return
	}

	httpx.OK(c, events)
}

// Actions returns the selectable security actions in display order.
// GET /api/v1/requests/actions
func (h *Handler) Actions(c *gin.Context) {
	acts := cloudflare.Actions()
	views := make([]actionView, 0, len(acts))
	for _, a := range acts {
		views = append(views, actionView{
			Key:         string(a),
			Label:       a.Label(),
			Description: a.Description(),
		})
	}
	httpx.OK(c, views)
}

// Dispatch records a security action against a host address.
// POST /api/v1/requests/actions/dispatch
func (h *Handler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	act := cloudflare.Action(req.Action)
	if !act.Valid() {
		httpx.FailErr(c, httpx.ErrParamInvalid("unknown action: "+req.Action))
		return
	}

	zoneID, err := h.source.Zone(c.Query("zoneId"))
	if err != nil {
		failZone(c, err)
		return
	}

	if err := h.recorder.DispatchAction(c.Request.Context(), zoneID, act, req.HostIP); err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to record action", err))
		return
	}

	httpx.OKMsg(c, "action dispatched", gin.H{
		"action": string(act),
		"hostIp": req.HostIP,
		"zoneId": zoneID,
	})
}

// History returns recently dispatched actions, newest first.
// GET /api/v1/requests/actions/history
func (h *Handler) History(c *gin.Context) {
	logs, err := h.recorder.Recent(c.Request.Context(), 50)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load action history", err))
		return
	}
	httpx.OK(c, logs)
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
