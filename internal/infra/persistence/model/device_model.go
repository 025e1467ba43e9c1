package model

import "time"

// DeviceModel is the GORM-specific struct for the 'devices' table.
// The priority comes from a dedicated sequence so creation order and rank
// order start out identical; boosts only ever lower it, and ties after a
// boost are resolved by the rank aggregate's <= comparison.
type DeviceModel struct {
	ID               string `gorm:"type:varchar(255);primaryKey"`
	Priority         int64  `gorm:"not null;index;default:nextval('devices_priority_seq')"`
	IsActivated      bool   `gorm:"not null;default:false;index"`
	ActivationCodeID *int64 `gorm:"index"`
	ActivatedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
