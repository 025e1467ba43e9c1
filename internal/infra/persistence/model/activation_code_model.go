package model

import "time"

// ActivationCodeModel is the GORM-specific struct for the 'activation_codes' table.
// Rows are provisioned out-of-band, one per invitee, and consumed exactly once.
type ActivationCodeModel struct {
	ID        int64  `gorm:"primaryKey"`
	Code      string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Used      bool   `gorm:"not null;default:false"`
	UsedAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivationCodeModel) TableName() string {
	return "activation_codes"
}
