package model

import "gorm.io/datatypes"

// ActionLogStatus represents the state of a dispatched security action
type ActionLogStatus string

const (
	ActionLogStatusPending ActionLogStatus = "pending"
	ActionLogStatusApplied ActionLogStatus = "applied"
	ActionLogStatusFailed  ActionLogStatus = "failed"
)

// ActionLog records one security-action hand-off against a host IP.
type ActionLog struct {
	BaseModel
	Ref     string          `gorm:"type:varchar(36);uniqueIndex;not null" json:"ref"`
	ZoneID  string          `gorm:"column:zone_id;type:varchar(64);not null;index" json:"zone_id"`
	Action  string          `gorm:"type:varchar(32);not null" json:"action"`
	HostIP  string          `gorm:"column:host_ip;type:varchar(64);not null" json:"host_ip"`
	Status  ActionLogStatus `gorm:"type:enum('pending','applied','failed');default:'pending'" json:"status"`
	Payload datatypes.JSON  `gorm:"type:json" json:"payload"`
}

// TableName specifies the table name for ActionLog model
func (ActionLog) TableName() string {
	return "action_logs"
}
