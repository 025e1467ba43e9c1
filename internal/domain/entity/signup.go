package entity

import "time"

// SignupRequest is a pending registration-for-updates, keyed by the random
// salted hash mailed to the address. Presenting the hash back promotes it.
type SignupRequest struct {
	Hash      string    `json:"hash"`
	Email     string    `json:"email"`
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup is a confirmed email registration.
type Signup struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupDevice associates a confirmed signup with a device in the line.
type SignupDevice struct {
	SignupID  int64     `json:"signup_id"`
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}
