// Package entity contains the core business objects of the project.
package entity

import "time"

// Device represents one physical install waiting in (or admitted from) the line.
// The priority value is assigned by the store at creation and only ever
// decreases afterwards; a lower value means an earlier place.
type Device struct {
	ID               string     `json:"id"`                 // Opaque stable device identifier, immutable once created.
	Priority         int64      `json:"priority"`           // Numeric rank key; ties are possible after boosts.
	IsActivated      bool       `json:"is_activated"`       // True once the device has been let in.
	ActivationCodeID *int64     `json:"activation_code_id"` // Code that admitted this device, set at most once.
	ActivatedAt      *time.Time `json:"activated_at"`       // When the device was let in.
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
