package usecase

import "context"

// ShareInput defines the data carried by one share reward attempt.
type ShareInput struct {
	DeviceID string
	Channel  string
}

// ShareOutput returns the device's improved priority after a boost.
type ShareOutput struct {
	Status   int   `json:"status"`
	Priority int64 `json:"priority"`
}

// ShareUsecase rewards verified social shares by improving queue priority.
type ShareUsecase interface {
	// Share applies the channel's boost factor to the device's priority.
	Share(ctx context.Context, input *ShareInput) (*ShareOutput, error)

	// ShareQR renders a PNG QR code of the device's share landing URL.
	ShareQR(ctx context.Context, deviceID string) ([]byte, error)
}
