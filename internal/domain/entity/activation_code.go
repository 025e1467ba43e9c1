package entity

import "time"

// ActivationCode is a pre-provisioned single-use admission token.
// A code with Used set can never be matched again.
type ActivationCode struct {
	ID        int64      `json:"id"`
	Code      string     `json:"code"` // Externally presented opaque token, unique.
	Used      bool       `json:"used"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
