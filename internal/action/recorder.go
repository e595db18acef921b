package action

import (
	"context"
	"encoding/json"
	"time"

	"cfpanel/internal/cloudflare"
	"cfpanel/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notifier pushes a dispatched-action notice to connected clients.
type Notifier func(event string, data interface{})

// Recorder implements cloudflare.ActionDispatcher by writing an audit row
// for every hand-off. The provider mutation that actually changes firewall
// state is not issued here; rows stay pending until an effecting backend
// picks them up.
type Recorder struct {
	db     *gorm.DB
	notify Notifier
}

// NewRecorder creates a recorder. notify may be nil.
func NewRecorder(db *gorm.DB, notify Notifier) *Recorder {
	return &Recorder{db: db, notify: notify}
}

// logPayload is the JSON document stored with each audit row.
type logPayload struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	RequestedAt string `json:"requested_at"`
}

// DispatchAction records the selected action against the host IP.
func (r *Recorder) DispatchAction(ctx context.Context, zoneID string, act cloudflare.Action, hostIP string) error {
	payload, err := json.Marshal(logPayload{
		Label:       act.Label(),
		Description: act.Description(),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	entry := model.ActionLog{
		Ref:     uuid.NewString(),
		ZoneID:  zoneID,
		Action:  string(act),
		HostIP:  hostIP,
		Status:  model.ActionLogStatusPending,
		Payload: datatypes.JSON(payload),
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	if r.notify != nil {
		r.notify("action:dispatched", map[string]interface{}{
			"ref":    entry.Ref,
			"zoneId": entry.ZoneID,
			"action": entry.Action,
			"hostIp": entry.HostIP,
		})
	}

	return nil
}

// Recent returns the latest audit rows, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]model.ActionLog, error) {
	var logs []model.ActionLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
