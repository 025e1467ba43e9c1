// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"waitline/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to enqueue a device that already exists.
	ErrDuplicateDevice = errors.New("device already enqueued")
)

// QueuePosition is a device's derived rank among not-yet-admitted devices.
// Place is 1-based; Total counts every waiting device. Both come from one
// aggregate pass so they cannot race against each other.
type QueuePosition struct {
	Place int64
	Total int64
}

// QueueCounts is the read-only projection behind the info endpoint.
type QueueCounts struct {
	LetIn        int64
	StillWaiting int64
}

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindByID retrieves a device by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Device, error)

	// Insert persists a new device. The store assigns the priority from its
	// sequence and the entity is updated with the generated values.
	// Returns ErrDuplicateDevice when the id is already enqueued.
	Insert(ctx context.Context, device *entity.Device) error

	// Activate marks a waiting device admitted and links the consumed code.
	Activate(ctx context.Context, id string, codeID int64) error

	// BoostPriority applies priority := floor(priority * multiplier) as one
	// atomic update and returns the new priority.
	// Returns ErrDeviceNotFound when no row matches.
	BoostPriority(ctx context.Context, id string, multiplier float64) (int64, error)

	// PlaceAndTotal computes the waiting-line position for a priority value
	// in a single aggregate query.
	PlaceAndTotal(ctx context.Context, priority int64) (*QueuePosition, error)

	// Counts reports how many devices are admitted and how many still wait.
	Counts(ctx context.Context) (*QueueCounts, error)
}
