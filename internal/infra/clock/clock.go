// Package clock provides the wall-clock implementation of service.Clock.
package clock

import (
	"time"

	"waitline/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
