package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness probe.
const DefaultTimeout = 5 * time.Second

// Status of one dependency.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result reports the state of a probed dependency.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker probes one external dependency the engine cannot run without.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
