package model

import "time"

// SignupRequestModel is the GORM-specific struct for the 'signup_requests' table.
type SignupRequestModel struct {
	Hash      string `gorm:"type:varchar(64);primaryKey"`
	Email     string `gorm:"type:varchar(255);not null"`
	DeviceID  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SignupRequestModel) TableName() string {
	return "signup_requests"
}

// SignupModel is the GORM-specific struct for the 'signups' table.
type SignupModel struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SignupModel) TableName() string {
	return "signups"
}

// SignupDeviceModel is the GORM-specific struct for the 'signup_devices' table.
type SignupDeviceModel struct {
	SignupID  int64  `gorm:"primaryKey;autoIncrement:false"`
	DeviceID  string `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SignupDeviceModel) TableName() string {
	return "signup_devices"
}
