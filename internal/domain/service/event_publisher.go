package service

import (
	"context"
	"time"
)

// Queue event types published after a successful transaction.
const (
	EventDeviceEnqueued  = "device_enqueued"
	EventDeviceActivated = "device_activated"
	EventPriorityBoosted = "priority_boosted"
)

// QueueEvent represents a waiting-line state change for downstream consumers
// (launch dashboards, analytics).
type QueueEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	DeviceID   string    `json:"device_id"`
	Priority   int64     `json:"priority"`
	Place      int64     `json:"place,omitempty"`
	Total      int64     `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing queue events to a message queue
type EventPublisher interface {
	// PublishQueueEvent publishes a queue event for async processing
	PublishQueueEvent(ctx context.Context, event *QueueEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
