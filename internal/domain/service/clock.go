package service

import "time"

// Clock abstracts wall-clock time so the pre-launch window rule is testable
// without waiting for real time to pass.
type Clock interface {
	Now() time.Time
}
