package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Audit action kinds.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionView   = "VIEW"
)

// Audit outcome statuses.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
	StatusWarning = "WARNING"
	StatusFailed  = "FAILED"
)

// ActivityLog is one audit record: who did what, to which module, with what
// before/after data. Entries are append-only; the core never mutates or
// deletes them.
type ActivityLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"size:50;index" json:"user_id"`
	UserName    string         `gorm:"size:150" json:"user_name"`
	IPAddress   string         `gorm:"size:50" json:"ip_address"`
	Method      string         `gorm:"size:10" json:"method"`
	Path        string         `gorm:"size:255" json:"path"`
	Action      string         `gorm:"size:20;index;not null" json:"action"`
	Module      string         `gorm:"size:50;index;not null" json:"module"`
	Description string         `gorm:"type:text" json:"description"`
	Before      datatypes.JSON `json:"before,omitempty"`
	After       datatypes.JSON `json:"after,omitempty"`
	Status      string         `gorm:"size:20;index;not null" json:"status"`
	ErrorMsg    string         `gorm:"type:text" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_log" }

// ActorContext is the request-scoped identity attached to audit entries.
// It is extracted from gateway-provided headers and stored opaquely; the
// audit layer does not interpret it.
type ActorContext struct {
	UserID    string
	UserName  string
	IPAddress string
	Method    string
	Path      string
}
