package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent is an audit record of an admin login. Rows are written with raw
// SQL by utils.LogLoginEvent; the model exists for migration.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"not null"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
